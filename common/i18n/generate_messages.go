package i18n

// GenerateMessages holds strings printed while rendering images
type GenerateMessages struct {
	Writing              string
	GenerationCompleted  string
	NothingToDo          string
	ErrorFailedGenerate  string
	InteractiveSelection string
	SelectionCancelled   string
	NoLanguagesSelected  string
	ImagesSuffix         string
}

var EnglishGenerateMessages = GenerateMessages{
	Writing:              "Writing %s",
	GenerationCompleted:  "Generated %d images, %d already present",
	NothingToDo:          "All images already present",
	ErrorFailedGenerate:  "Failed to generate images: %v",
	InteractiveSelection: "Select languages to render:",
	SelectionCancelled:   "selection cancelled: %v",
	NoLanguagesSelected:  "no languages selected",
	ImagesSuffix:         "img/s",
}

var ChineseGenerateMessages = GenerateMessages{
	Writing:              "正在写入 %s",
	GenerationCompleted:  "已生成 %d 张图像，%d 张已存在",
	NothingToDo:          "所有图像均已存在",
	ErrorFailedGenerate:  "生成图像失败: %v",
	InteractiveSelection: "选择要渲染的语言:",
	SelectionCancelled:   "选择已取消: %v",
	NoLanguagesSelected:  "未选择任何语言",
	ImagesSuffix:         "张/秒",
}
