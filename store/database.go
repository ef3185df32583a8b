// Package store は、NEOと接近記録を保持するインメモリデータベースを提供します。
package store

import (
	"iter"

	"go.uber.org/zap"

	"github.com/jonathanmnovak/neo-capstone/model"
)

// Database はNEOと接近記録を紐付けて保持するインメモリデータベースです。
// NewDatabaseが返った後は読み取り専用で、複数のgoroutineから同時に参照できます。
type Database struct {
	neos       []*model.NearEarthObject
	approaches []*model.CloseApproach

	byDesignation map[string]*model.NearEarthObject
	byName        map[string]*model.NearEarthObject
	searchKeys    []string

	linked int
	logger *zap.SugaredLogger
}

// Option configures a Database.
type Option func(*Database)

// WithLogger sets the logger used while building the database.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(d *Database) {
		d.logger = logger
	}
}

// NewDatabase はNEOと接近記録のコレクションからDatabaseを構築します。
// 読み込まれたNEOの仮符号を持つ接近記録はそのNEOに紐付け、
// それ以外は未紐付けのまま保持します。
func NewDatabase(neos []*model.NearEarthObject, approaches []*model.CloseApproach, opts ...Option) *Database {
	d := &Database{
		neos:          neos,
		approaches:    approaches,
		byDesignation: make(map[string]*model.NearEarthObject, len(neos)),
		byName:        make(map[string]*model.NearEarthObject),
		logger:        zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(d)
	}

	// 仮符号と名前のインデックスを構築
	// 重複するキーは後のエントリで上書きされる
	for _, neo := range neos {
		if _, dup := d.byDesignation[neo.Designation]; dup {
			d.logger.Debugw("duplicate designation overwrites earlier entry", "designation", neo.Designation)
		}
		d.byDesignation[neo.Designation] = neo
		if neo.Name != "" {
			d.byName[neo.Name] = neo
		}
	}
	d.searchKeys = buildSearchKeys(neos)

	// 接近記録をNEOに紐付け
	for _, approach := range approaches {
		neo, ok := d.byDesignation[approach.Designation()]
		if !ok {
			continue
		}
		if err := approach.Attach(neo); err != nil {
			// Only reachable if the caller reused an already linked approach.
			d.logger.Warnw("approach not linked", "designation", approach.Designation(), "error", err)
			continue
		}
		d.linked++
	}

	stats := d.Stats()
	d.logger.Infow("database built",
		"neos", stats.NEOs,
		"named", stats.Named,
		"approaches", stats.Approaches,
		"linked", stats.Linked,
		"unlinked", stats.Unlinked,
	)
	return d
}

// GetNEOByDesignation は仮符号でNEOを検索します。
func (d *Database) GetNEOByDesignation(designation string) (*model.NearEarthObject, bool) {
	neo, ok := d.byDesignation[designation]
	return neo, ok
}

// GetNEOByName はIAU名でNEOを検索します。空の名前は常に見つかりません。
func (d *Database) GetNEOByName(name string) (*model.NearEarthObject, bool) {
	if name == "" {
		return nil, false
	}
	neo, ok := d.byName[name]
	return neo, ok
}

// Query は全てのフィルタを満たす接近記録を読み込み順に返すイテレータです。
// 結果をrangeするたびに接近記録を走査し直し、キャッシュはしません。
func (d *Database) Query(filters ...Filter) iter.Seq[*model.CloseApproach] {
	return func(yield func(*model.CloseApproach) bool) {
		for _, approach := range d.approaches {
			if !matchAll(filters, approach) {
				continue
			}
			if !yield(approach) {
				return
			}
		}
	}
}

// NEOs returns the loaded objects in load order.
func (d *Database) NEOs() []*model.NearEarthObject {
	out := make([]*model.NearEarthObject, len(d.neos))
	copy(out, d.neos)
	return out
}

// Approaches returns every approach in load order, linked or not.
func (d *Database) Approaches() []*model.CloseApproach {
	out := make([]*model.CloseApproach, len(d.approaches))
	copy(out, d.approaches)
	return out
}

// Stats summarizes the contents of a Database.
type Stats struct {
	NEOs       int `json:"neos"`
	Named      int `json:"named"`
	Approaches int `json:"approaches"`
	Linked     int `json:"linked"`
	Unlinked   int `json:"unlinked"`
}

// Stats returns counts of the loaded data.
func (d *Database) Stats() Stats {
	return Stats{
		NEOs:       len(d.neos),
		Named:      len(d.byName),
		Approaches: len(d.approaches),
		Linked:     d.linked,
		Unlinked:   len(d.approaches) - d.linked,
	}
}
