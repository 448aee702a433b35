package localstore

// 固定的槽位键名。
const (
	// BackupKey 下存放有序的备份世代日志（长度≤上限的JSON数组）
	BackupKey = "wine-backup"

	// DarkModeKey 是UI主题偏好开关
	DarkModeKey = "darkMode"

	// TutorialShownKey 标记首次使用引导是否已经展示过
	TutorialShownKey = "tutorialShown"
)
