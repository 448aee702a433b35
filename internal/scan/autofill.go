// Package scan 实现标签扫描结果的表单回填策略。
// 文字识别本身由外部协作方完成；这里只消费它给出的结构化猜测。
package scan

import "strconv"

// 各字段的置信度门槛：低于门槛的猜测不会进入表单。
// 年份的正则匹配最可靠，酒名靠版面位置推断最不可靠。
const (
	VintageThreshold  = 80
	RegionThreshold   = 70
	ProducerThreshold = 60
	NameThreshold     = 40
)

// Confidence 是识别协作方对每个字段给出的置信度（0~100）。
type Confidence struct {
	Name     int `json:"name"`
	Producer int `json:"producer"`
	Vintage  int `json:"vintage"`
	Region   int `json:"region"`
}

// Guess 是识别协作方从酒标中提取的尽力而为的结构化猜测。
type Guess struct {
	Name       string     `json:"name"`
	Producer   string     `json:"producer"`
	Vintage    *int       `json:"vintage"`
	Region     string     `json:"region"`
	Confidence Confidence `json:"confidence"`
}

// Form 是录入表单中可被回填的字段的当前状态。
// 字段均为文本，与表单输入框一一对应。
type Form struct {
	Name     string `json:"name"`
	Producer string `json:"producer"`
	Vintage  string `json:"vintage"`
	Region   string `json:"region"`
}

// Apply 把猜测回填进表单：只有当字段尚无用户输入、
// 且置信度达到该字段门槛时才填入。返回被填入的字段名列表。
func Apply(form *Form, guess Guess) []string {
	applied := []string{}

	if form.Vintage == "" && guess.Vintage != nil && guess.Confidence.Vintage >= VintageThreshold {
		form.Vintage = strconv.Itoa(*guess.Vintage)
		applied = append(applied, "vintage")
	}
	if form.Region == "" && guess.Region != "" && guess.Confidence.Region >= RegionThreshold {
		form.Region = guess.Region
		applied = append(applied, "region")
	}
	if form.Producer == "" && guess.Producer != "" && guess.Confidence.Producer >= ProducerThreshold {
		form.Producer = guess.Producer
		applied = append(applied, "producer")
	}
	if form.Name == "" && guess.Name != "" && guess.Confidence.Name >= NameThreshold {
		form.Name = guess.Name
		applied = append(applied, "name")
	}

	return applied
}
