package i18n

// VerifyMessages holds strings of the verify command
type VerifyMessages struct {
	Use                string
	Short              string
	Long               string
	ImageOK            string
	ImageMissing       string
	ImageInvalid       string
	Summary            string
	ErrorVerifyFailed  string
	ErrorInvalidImages string
}

var EnglishVerifyMessages = VerifyMessages{
	Use:   "verify",
	Short: "Check generated images",
	Long: `Decompress and decode every expected image and report its size.

Languages without a translation are not expected to have images.`,
	ImageOK:            "%s: %dx%d (%s)",
	ImageMissing:       "%s: missing",
	ImageInvalid:       "%s: invalid: %v",
	Summary:            "%d valid, %d missing, %d invalid",
	ErrorVerifyFailed:  "Failed to verify images: %v",
	ErrorInvalidImages: "found %d invalid images",
}

var ChineseVerifyMessages = VerifyMessages{
	Use:   "verify",
	Short: "检查已生成的图像",
	Long: `解压并解码每张预期的图像并报告其尺寸。

没有翻译的语言不应有图像。`,
	ImageOK:            "%s: %dx%d (%s)",
	ImageMissing:       "%s: 缺失",
	ImageInvalid:       "%s: 无效: %v",
	Summary:            "%d 张有效，%d 张缺失，%d 张无效",
	ErrorVerifyFailed:  "校验图像失败: %v",
	ErrorInvalidImages: "发现 %d 张无效图像",
}
