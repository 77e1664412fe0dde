package generator

import (
	"github.com/fwupd/fwupd-images/common/file"
	"github.com/fwupd/fwupd-images/compression"
	"github.com/fwupd/fwupd-images/raster"
)

// Resolution is a target screen size.
type Resolution struct {
	Width  int
	Height int
}

// Resolutions are the 4:3 and 16:9 screens images are generated for, in
// output order.
var Resolutions = []Resolution{
	{640, 480},
	{800, 600},
	{1024, 768},
	{1920, 1080},
	{3840, 2160},
	{5120, 2880},
	{5688, 3200},
	{7680, 4320},
}

// Options configures a Generator.
type Options struct {
	// LocaleDir holds the gettext catalogs and receives the images.
	LocaleDir string
	Label     string

	// Languages in rendering order, usually from catalog.ReadLinguas.
	Languages []string
	Domain    string

	Fonts       []*raster.Font
	Compression compression.CompressionType

	// Workers is the number of images rendered at once; 1 keeps the run sequential.
	Workers int
}

// Job is one (language, resolution) pair.
type Job struct {
	Language   string
	Text       string
	Resolution Resolution
	Path       string
}

// Status of a job after the run.
type Status int

const (
	StatusWritten Status = iota
	StatusExists
)

// ProgressInfo represents progress information for a run
type ProgressInfo struct {
	Job       Job    `json:"job"`
	Status    Status `json:"status"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Size      int    `json:"size"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
}

// ProgressCallback is a function type for receiving progress updates
type ProgressCallback func(progress ProgressInfo)

// Result summarizes a run.
type Result struct {
	Written  int
	Existing int

	// Skipped lists languages without a translation of the label.
	Skipped []string
}

// FormatSize converts bytes into a human-readable string.
func FormatSize(bytes int) string {
	return file.FormatSize(uint64(bytes))
}
