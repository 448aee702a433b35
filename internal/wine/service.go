package wine

import "context"

// --- Service-Level Data Transfer Objects (DTOs) ---

// CardDTO 是列表视图所需的数据：缩略图回退与笔记归一化在这里完成，
// 展示端不再需要分辨新旧两代字段。
type CardDTO struct {
	ID       uint     `json:"id"`
	Name     string   `json:"name"`
	Producer string   `json:"producer,omitempty"`
	Region   string   `json:"region,omitempty"`
	Variety  string   `json:"variety,omitempty"`
	Vintage  *int     `json:"vintage,omitempty"`
	Date     string   `json:"date,omitempty"`
	Rating   int      `json:"rating"`
	Favorite bool     `json:"favorite"`
	WineType WineType `json:"wineType,omitempty"`
	Image    string   `json:"image,omitempty"`
	Notes    string   `json:"notes,omitempty"`
}

// Service 组合存储、查询层与统计归约，向控制器层提供快照视图。
type Service struct {
	store *Store
}

// NewService 构造服务层。
func NewService(store *Store) *Service {
	return &Service{store: store}
}

// ListCards 返回列表视图：可选的搜索词先于过滤与排序生效。
// filterMode 为空视作 all，sortKey 为空视作 date-desc（存储默认顺序）。
func (s *Service) ListCards(ctx context.Context, query, filterMode, sortKey string) ([]CardDTO, error) {
	var records []Wine
	var err error
	if query != "" {
		records, err = s.store.Search(ctx, query)
	} else {
		records, err = s.store.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	if filterMode == "" {
		filterMode = FilterAll
	}
	if sortKey == "" {
		sortKey = SortDateDesc
	}
	records = Sort(Filter(records, filterMode), sortKey)

	cards := make([]CardDTO, 0, len(records))
	for i := range records {
		cards = append(cards, toCard(&records[i]))
	}
	return cards, nil
}

// Statistics 对一次全量快照做统计归约。
func (s *Service) Statistics(ctx context.Context) (Stats, error) {
	records, err := s.store.ListAll(ctx)
	if err != nil {
		return Stats{}, err
	}
	return Aggregate(records), nil
}

func toCard(w *Wine) CardDTO {
	card := CardDTO{
		ID:       w.ID,
		Name:     w.Name,
		Producer: w.Producer,
		Region:   w.Region,
		Variety:  w.Variety,
		Vintage:  w.Vintage,
		Date:     w.Date,
		Rating:   w.Rating,
		Favorite: w.Favorite,
		Image:    w.DisplayImage(),
		Notes:    w.ResolvedNotes(),
	}
	if w.Tasting != nil {
		card.WineType = w.Tasting.WineType
	}
	return card
}
