package catalog

import "errors"

// ErrNotFound：按 id 查找未命中
var ErrNotFound = errors.New("record not found")

// 文档注释：单份只读目录上的查询服务
// 背景：记录在构造后不再变化，可被任意数量的并发请求共享读取，无需加锁。
// 约束：对外返回的切片与调用方共享底层数组，调用方不得修改。
type Catalog[T Record] struct {
	records []T
	byID    map[uint32]int
}

// New：基于已加载的记录构造目录；同一 id 重复时保留首次出现的位置
func New[T Record](records []T) *Catalog[T] {
	if records == nil {
		records = []T{}
	}
	byID := make(map[uint32]int, len(records))
	for i, r := range records {
		if _, ok := byID[r.RecordID()]; !ok {
			byID[r.RecordID()] = i
		}
	}
	return &Catalog[T]{records: records, byID: byID}
}

// List：按加载顺序返回全部记录
func (c *Catalog[T]) List() []T { return c.records }

// Len：记录数
func (c *Catalog[T]) Len() int { return len(c.records) }

// Get：按 id 相等查找，未命中返回 ErrNotFound
func (c *Catalog[T]) Get(id uint32) (T, error) {
	if i, ok := c.byID[id]; ok {
		return c.records[i], nil
	}
	var zero T
	return zero, ErrNotFound
}

// Search：返回任一搜索字段被 query 模糊命中的记录，保持目录顺序；无结果时返回空切片而非 nil
func (c *Catalog[T]) Search(query string) []T {
	out := []T{}
	for _, r := range c.records {
		if matchesAny(query, r.SearchFields()) {
			out = append(out, r)
		}
	}
	return out
}

// Catalogs：进程内两份目录的集合，启动时构造一次
type Catalogs struct {
	Parks  *Catalog[Park]
	States *Catalog[State]
}

// LoadAll：加载公园与州两份目录；任一失败即返回错误
func LoadAll(parksPath, statesPath string) (*Catalogs, error) {
	parks, err := Load[Park](parksPath)
	if err != nil {
		return nil, err
	}
	states, err := Load[State](statesPath)
	if err != nil {
		return nil, err
	}
	return &Catalogs{Parks: New(parks), States: New(states)}, nil
}
