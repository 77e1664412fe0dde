package i18n

// AppMessages holds application-level translatable strings
type AppMessages struct {
	AppDescription     string
	AppLongDescription string

	// Version command messages
	VersionTitle        string
	VersionLabel        string
	GoVersionLabel      string
	PlatformLabel       string
	CompressionLabel    string
	DefaultMarker       string
	VersionCmdShort     string
	VersionCmdLong      string
	FlagLocaleDir       string
	FlagLabel           string
	FlagLinguas         string
	FlagFont            string
	FlagCompression     string
	FlagWorkers         string
	FlagLanguages       string
	FlagSelect          string
	FlagProgress        string
	FlagDomain          string
	ErrorBadCompression string
}

// English app messages
var EnglishAppMessages = AppMessages{
	AppDescription: "Generate localized UEFI capsule update images",
	AppLongDescription: `Render the firmware update label for every language listed in
LINGUAS and for a fixed set of screen resolutions.

Each image is written as a compressed Windows bitmap to
<localedir>/<language>/LC_IMAGES/fwupd-<width>-<height>.bmp.gz.
Existing files are never regenerated.`,

	VersionTitle:        "fwupd-images",
	VersionLabel:        "Version",
	GoVersionLabel:      "Go Version",
	PlatformLabel:       "Platform",
	CompressionLabel:    "Compression codecs",
	DefaultMarker:       "default",
	VersionCmdShort:     "Show version information",
	VersionCmdLong:      "Display version information including the available compression codecs",
	FlagLocaleDir:       "locale directory holding <lang>/LC_MESSAGES catalogs and receiving the images",
	FlagLabel:           "update text to render",
	FlagLinguas:         "LINGUAS file listing the supported languages",
	FlagFont:            "font file to render with, may be repeated (default: embedded sans)",
	FlagCompression:     "compression for output files: gzip, zstd, xz, brotli or none",
	FlagWorkers:         "number of images rendered concurrently",
	FlagLanguages:       "comma separated subset of languages to render",
	FlagSelect:          "interactively select the languages to render",
	FlagProgress:        "show a progress bar instead of per-file messages",
	FlagDomain:          "gettext domain of the label",
	ErrorBadCompression: "Invalid compression: %v",
}

// Chinese app messages
var ChineseAppMessages = AppMessages{
	AppDescription: "生成本地化的 UEFI 胶囊更新图像",
	AppLongDescription: `为 LINGUAS 中列出的每种语言以及一组固定的屏幕分辨率
渲染固件更新文本。

每张图像以压缩的 Windows 位图写入
<localedir>/<language>/LC_IMAGES/fwupd-<width>-<height>.bmp.gz。
已存在的文件不会重新生成。`,

	VersionTitle:        "fwupd-images",
	VersionLabel:        "版本",
	GoVersionLabel:      "Go 版本",
	PlatformLabel:       "平台",
	CompressionLabel:    "压缩算法",
	DefaultMarker:       "默认",
	VersionCmdShort:     "显示版本信息",
	VersionCmdLong:      "显示版本信息，包括可用的压缩算法",
	FlagLocaleDir:       "包含 <lang>/LC_MESSAGES 翻译目录并接收图像的 locale 目录",
	FlagLabel:           "要渲染的更新文本",
	FlagLinguas:         "列出支持语言的 LINGUAS 文件",
	FlagFont:            "用于渲染的字体文件，可重复指定 (默认: 内置无衬线字体)",
	FlagCompression:     "输出文件压缩方式: gzip、zstd、xz、brotli 或 none",
	FlagWorkers:         "并发渲染的图像数量",
	FlagLanguages:       "要渲染的语言子集，以逗号分隔",
	FlagSelect:          "交互式选择要渲染的语言",
	FlagProgress:        "显示进度条而不是逐个文件的消息",
	FlagDomain:          "文本所属的 gettext 域",
	ErrorBadCompression: "无效的压缩方式: %v",
}
