// 包 catalog：国家公园与州两份只读目录的数据模型、加载与查询
package catalog

// 文档注释：国家公园记录
// 约束：字段名与磁盘 JSON 的 lowerCamelCase 键一致；established/area 为自由文本，不做解析。
type Park struct {
	ID          uint32 `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	Location    string `json:"location"`
	Established string `json:"established"`
	Area        string `json:"area"`
	Visitors    uint32 `json:"visitors"`
	Description string `json:"description"`
}

// 文档注释：州记录
// 背景：三个公园数量字段可能未知；用指针区分“未知(null)”与“0 个”。
type State struct {
	ID             uint32  `json:"id"`
	State          string  `json:"state"`
	TotalParks     *uint32 `json:"totalParks"`
	ExclusiveParks *uint32 `json:"exclusiveParks"`
	SharedParks    *uint32 `json:"sharedParks"`
}

// Record：目录元素需要提供的最小能力
// RecordID 用于按 id 查找；SearchFields 返回参与模糊搜索的文本字段；RequiredKeys 供加载器校验文件结构。
type Record interface {
	Park | State
	RecordID() uint32
	SearchFields() []string
	RequiredKeys() []string
}

func (p Park) RecordID() uint32 { return p.ID }

// 公园按名称或描述搜索
func (p Park) SearchFields() []string { return []string{p.Name, p.Description} }

func (Park) RequiredKeys() []string {
	return []string{"id", "name", "image", "location", "established", "area", "visitors", "description"}
}

func (s State) RecordID() uint32 { return s.ID }

// 州仅按名称搜索
func (s State) SearchFields() []string { return []string{s.State} }

func (State) RequiredKeys() []string { return []string{"id", "state"} }

// Uint32：构造可选计数字段的便捷函数
func Uint32(v uint32) *uint32 { return &v }
