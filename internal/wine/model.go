package wine

import "time"

// WineType 是品鉴记录中的酒类枚举
type WineType string

const (
	TypeRed       WineType = "red"
	TypeWhite     WineType = "white"
	TypeRose      WineType = "rose"
	TypeSparkling WineType = "sparkling"
)

// Tasting 定义了结构化的品鉴子记录
// 除 Aromas 外所有字段都是可选的自由文本；
// Tannin 只在 WineType 为 red 时有展示意义，存储层不做约束。
type Tasting struct {
	WineType        WineType `json:"wineType,omitempty"`
	AppearanceColor string   `json:"appearanceColor,omitempty"`
	Aromas          []string `json:"aromas,omitempty"`
	FirstAroma      string   `json:"firstAroma,omitempty"`
	SecondAroma     string   `json:"secondAroma,omitempty"`
	ThirdAroma      string   `json:"thirdAroma,omitempty"`
	OakIntensity    string   `json:"oakIntensity,omitempty"`
	Sweetness       string   `json:"sweetness,omitempty"`
	Acidity         string   `json:"acidity,omitempty"`
	Tannin          string   `json:"tannin,omitempty"`
	Body            string   `json:"body,omitempty"`
	Finish          string   `json:"finish,omitempty"`
	AdditionalNotes string   `json:"additionalNotes,omitempty"`
}

// Wine 定义了数据库中葡萄酒记录的数据结构
// 这是唯一被持久化的实体；ID由存储层铸造，时间戳由存储层盖章。
type Wine struct {
	// ID 是自增主键；记录存在期间绝不重新分配
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// Name 是酒名；非空由调用方保证，存储层不强制
	Name string `gorm:"index;not null" json:"name"`

	Producer string `json:"producer,omitempty"`
	Region   string `gorm:"index" json:"region,omitempty"`
	Variety  string `gorm:"index" json:"variety,omitempty"`

	// Vintage 是可选的年份
	Vintage *int `json:"vintage,omitempty"`

	// Date 是购买/品鉴日期（YYYY-MM-DD），区别于CreatedAt
	Date string `gorm:"index" json:"date,omitempty"`

	// Rating 是0~5的整数评分
	Rating int `json:"rating"`

	// Photo / Thumbnail 是不透明的编码图片载荷，存储层原样保存、从不解码
	Photo     string `json:"photo,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`

	Favorite bool `json:"favorite"`

	// Tasting 是结构化品鉴子记录，整体以JSON序列化存储
	Tasting *Tasting `gorm:"serializer:json" json:"tasting,omitempty"`

	// Notes 是旧版的自由文本字段，已被 Tasting.AdditionalNotes 取代。
	// 仅为读取兼容而保留，当前逻辑从不写入。
	Notes string `json:"notes,omitempty"`

	// 时间戳由存储层盖章：CreatedAt 仅在创建时、UpdatedAt 仅在更新时
	CreatedAt time.Time  `gorm:"autoCreateTime:false" json:"createdAt"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updatedAt,omitempty"`
}

// DateLayout 是 Date 字段的规范格式
const DateLayout = "2006-01-02"

// EffectiveDate 返回排序用的时间：优先解析 Date，为空时回退到 CreatedAt。
// 无法解析的日期坍缩为零值时间哨兵，保证排序确定且不会panic。
func (w *Wine) EffectiveDate() time.Time {
	if w.Date == "" {
		return w.CreatedAt
	}
	t, err := time.Parse(DateLayout, w.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// ResolvedNotes 把新旧两代笔记字段解析为单一的规范形态：
// 结构化品鉴笔记优先，缺失时回退到旧版自由文本。
func (w *Wine) ResolvedNotes() string {
	if w.Tasting != nil && w.Tasting.AdditionalNotes != "" {
		return w.Tasting.AdditionalNotes
	}
	return w.Notes
}

// DisplayImage 返回列表渲染用的图片载荷：缩略图缺失时回退到原图。
func (w *Wine) DisplayImage() string {
	if w.Thumbnail != "" {
		return w.Thumbnail
	}
	return w.Photo
}
