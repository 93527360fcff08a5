package stats

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/alexivanou/carryon-checker/internal/catalog"
	"github.com/alexivanou/carryon-checker/internal/config"
	"github.com/alexivanou/carryon-checker/internal/repository"
	"github.com/jmoiron/sqlx"
)

type Stats struct {
	Timestamp time.Time      `json:"timestamp"`
	Dataset   DatasetStats   `json:"dataset"`
	Memory    MemoryStats    `json:"memory"`
	Database  *DatabaseStats `json:"database,omitempty"`
	Runtime   RuntimeStats   `json:"runtime"`
}

// DatasetStats describes the installed reference data and its integrity
type DatasetStats struct {
	Loaded             bool           `json:"loaded"`
	LoadedAt           *time.Time     `json:"loaded_at,omitempty"`
	Airlines           int            `json:"airlines"`
	Rules              int            `json:"rules"`
	Countries          int            `json:"countries"`
	Suitcases          int            `json:"suitcases"`
	DuplicateAirlines  int            `json:"duplicate_airlines"`
	DuplicateCountries int            `json:"duplicate_countries"`
	OrphanRules        int            `json:"orphan_rules"`
	UnresolvedCountry  int            `json:"unresolved_countries"`
	InvalidRules       int            `json:"invalid_rules"`
	RulesByRouteType   map[string]int `json:"rules_by_route_type"`
}

type MemoryStats struct {
	Alloc        uint64 `json:"alloc"`
	TotalAlloc   uint64 `json:"total_alloc"`
	Sys          uint64 `json:"sys"`
	NumGC        uint32 `json:"num_gc"`
	HeapAlloc    uint64 `json:"heap_alloc"`
	HeapSys      uint64 `json:"heap_sys"`
	HeapInuse    uint64 `json:"heap_inuse"`
	HeapReleased uint64 `json:"heap_released"`
}

type DatabaseStats struct {
	Type         string      `json:"type"`
	TotalRecords int64       `json:"total_records"`
	SizeBytes    int64       `json:"size_bytes"`
	TableStats   []TableStat `json:"table_stats"`
}

type TableStat struct {
	Name      string `json:"name"`
	RowCount  int64  `json:"row_count"`
	SizeBytes int64  `json:"size_bytes,omitempty"`
}

type RuntimeStats struct {
	NumGoroutines int   `json:"num_goroutines"`
	NumCPU        int   `json:"num_cpu"`
	UptimeSeconds int64 `json:"uptime_seconds"`
}

type Collector struct {
	store      *catalog.Store
	db         *sqlx.DB
	config     config.DBConfig
	startTime  time.Time
	cachedMem  *MemoryStats
	cacheTime  time.Time
	cacheMutex sync.RWMutex
}

var (
	memStatsCacheDuration = 5 * time.Second
)

// NewCollector creates a collector. db may be nil when the reference data
// does not come from a database.
func NewCollector(store *catalog.Store, db *sqlx.DB, cfg config.DBConfig) *Collector {
	return &Collector{
		store:     store,
		db:        db,
		config:    cfg,
		startTime: time.Now(),
	}
}

func (c *Collector) Collect(ctx context.Context) (*Stats, error) {
	stats := &Stats{
		Timestamp: time.Now(),
	}

	stats.Dataset = c.collectDatasetStats()
	stats.Memory = c.collectMemoryStats()

	if c.db != nil {
		dbStats, err := c.collectDatabaseStats(ctx)
		if err != nil {
			return nil, err
		}
		stats.Database = dbStats
	}
	stats.Runtime = c.collectRuntimeStats()

	return stats, nil
}

func (c *Collector) collectDatasetStats() DatasetStats {
	stats := DatasetStats{RulesByRouteType: map[string]int{}}

	ds := c.store.Current()
	if ds == nil {
		return stats
	}

	loadedAt := ds.LoadedAt()
	stats.Loaded = true
	stats.LoadedAt = &loadedAt
	stats.Airlines = len(ds.Airlines())
	stats.Rules = len(ds.Rules())
	stats.Countries = len(ds.Countries())
	stats.Suitcases = len(ds.Suitcases())
	stats.DuplicateAirlines = ds.DuplicateAirlines()
	stats.DuplicateCountries = ds.DuplicateCountries()

	for _, rule := range ds.Rules() {
		if _, ok := ds.Airline(rule.ICAO); !ok {
			stats.OrphanRules++
		}
		if !rule.Width.Valid() || !rule.Height.Valid() || !rule.Depth.Valid() {
			stats.InvalidRules++
		}
		stats.RulesByRouteType[rule.RouteType.String()]++
	}

	for _, airline := range ds.Airlines() {
		if _, ok := ds.Country(airline.Country); !ok {
			stats.UnresolvedCountry++
		}
	}

	return stats
}

func (c *Collector) collectMemoryStats() MemoryStats {
	c.cacheMutex.RLock()
	if c.cachedMem != nil && time.Since(c.cacheTime) < memStatsCacheDuration {
		mem := *c.cachedMem
		c.cacheMutex.RUnlock()
		return mem
	}
	c.cacheMutex.RUnlock()

	c.cacheMutex.Lock()
	defer c.cacheMutex.Unlock()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	mem := MemoryStats{
		Alloc:        m.Alloc,
		TotalAlloc:   m.TotalAlloc,
		Sys:          m.Sys,
		NumGC:        m.NumGC,
		HeapAlloc:    m.HeapAlloc,
		HeapSys:      m.HeapSys,
		HeapInuse:    m.HeapInuse,
		HeapReleased: m.HeapReleased,
	}

	c.cachedMem = &mem
	c.cacheTime = time.Now()

	return mem
}

func (c *Collector) collectDatabaseStats(ctx context.Context) (*DatabaseStats, error) {
	stats := &DatabaseStats{
		Type: string(c.config.Type),
	}

	if totalSize, err := c.getDatabaseSize(ctx); err == nil {
		stats.SizeBytes = totalSize
	}

	tableStats, err := c.getTableStats(ctx)
	if err != nil {
		return nil, err
	}
	stats.TableStats = tableStats

	var totalRecords int64
	for _, ts := range tableStats {
		totalRecords += ts.RowCount
	}
	stats.TotalRecords = totalRecords

	return stats, nil
}

func (c *Collector) getDatabaseSize(ctx context.Context) (int64, error) {
	var size int64
	var err error

	if c.config.Type == config.DBTypePostgreSQL {
		err = c.db.GetContext(ctx, &size, "SELECT pg_database_size(current_database())")
	} else {
		err = c.db.GetContext(ctx, &size, "SELECT page_count * page_size FROM pragma_page_count(), pragma_page_size()")
	}

	if err != nil {
		return 0, err
	}
	return size, nil
}

func (c *Collector) getTableStats(ctx context.Context) ([]TableStat, error) {
	stats := []TableStat{}

	for _, table := range repository.Tables {
		stat, err := c.getTableStat(ctx, table)
		if err != nil {
			continue
		}
		stats = append(stats, *stat)
	}

	return stats, nil
}

func (c *Collector) getTableStat(ctx context.Context, tableName string) (*TableStat, error) {
	stat := &TableStat{Name: tableName}

	countQuery := "SELECT COUNT(*) FROM " + tableName
	var count int64
	err := c.db.GetContext(ctx, &count, countQuery)
	if err != nil {
		return nil, err
	}
	stat.RowCount = count

	if c.config.Type == config.DBTypePostgreSQL {
		sizeQuery := `SELECT COALESCE(pg_total_relation_size($1::regclass), 0)`
		var size int64
		err = c.db.GetContext(ctx, &size, sizeQuery, tableName)
		if err == nil {
			stat.SizeBytes = size
		}
	} else {
		// dbstat is only present when SQLite is built with it
		sizeQuery := `SELECT COALESCE(SUM(pgsize), 0) FROM dbstat WHERE name = ?`
		var size int64
		_ = c.db.GetContext(ctx, &size, sizeQuery, tableName)
		stat.SizeBytes = size
	}

	return stat, nil
}

func (c *Collector) collectRuntimeStats() RuntimeStats {
	uptime := time.Since(c.startTime).Seconds()
	return RuntimeStats{
		NumGoroutines: runtime.NumGoroutine(),
		NumCPU:        runtime.NumCPU(),
		UptimeSeconds: int64(uptime),
	}
}
