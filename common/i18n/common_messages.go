package i18n

// CommonMessages holds common translatable strings
type CommonMessages struct {
	// Error messages
	ErrorFailedToCreateGenerator string
	ErrorFailedToReadLinguas     string
	ErrorFailedToLoadFont        string
	ErrorMissingFont             string

	ElapsedTime string
}

// English common messages
var EnglishCommonMessages = CommonMessages{
	ErrorFailedToCreateGenerator: "Failed to create generator: %v",
	ErrorFailedToReadLinguas:     "Failed to read LINGUAS file: %v",
	ErrorFailedToLoadFont:        "Failed to load font: %v",
	ErrorMissingFont:             "Missing sans fonts",

	ElapsedTime: "Elapsed time: %s",
}

// Chinese common messages
var ChineseCommonMessages = CommonMessages{
	ErrorFailedToCreateGenerator: "无法创建生成器: %v",
	ErrorFailedToReadLinguas:     "无法读取 LINGUAS 文件: %v",
	ErrorFailedToLoadFont:        "无法加载字体: %v",
	ErrorMissingFont:             "缺少无衬线字体",

	ElapsedTime: "耗时: %s",
}
