package wine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrImportParse 表示导入文档格式非法，无法解析。
var ErrImportParse = errors.New("导入文档解析失败")

// DocumentVersion 是导出文档的格式版本号。
const DocumentVersion = "1.0"

// Document 是可移植的导出文档：字段完整、可供人工检视的JSON，
// 携带按存储默认顺序排列的完整记录序列。
type Document struct {
	Version string `json:"version"`
	Wines   []Wine `json:"wines"`
}

// Codec 负责在存储内容与可移植文档之间互转。
type Codec struct {
	store *Store
}

// NewCodec 构造一个基于指定存储的编解码器。
func NewCodec(store *Store) *Codec {
	return &Codec{store: store}
}

// ExportAll 把当前 ListAll 的完整结果序列化为带缩进的JSON文档。
func (c *Codec) ExportAll(ctx context.Context) ([]byte, error) {
	records, err := c.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	doc := Document{
		Version: DocumentVersion,
		Wines:   records,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("序列化导出文档失败: %w", err)
	}
	return data, nil
}

// ImportAll 解析文档并把其中每条记录作为全新记录入库：
// 丢弃文档内嵌的ID并铸造新ID、盖章新的CreatedAt。
// 整批写入在单个事务内完成——任何一条失败则零条提交。
// 返回新增的记录数。
func (c *Codec) ImportAll(ctx context.Context, data []byte) (int, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrImportParse, err)
	}

	if len(doc.Wines) == 0 {
		return 0, nil
	}

	if err := c.store.CreateAll(ctx, doc.Wines); err != nil {
		return 0, err
	}
	return len(doc.Wines), nil
}
