package file

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTemplatePath(t *testing.T) {
	tests := []struct {
		dir    string
		lang   string
		w, h   int
		suffix string
		want   string
	}{
		{"/usr/share/locale", "de", 640, 480, "bmp.gz", "/usr/share/locale/de/LC_IMAGES/fwupd-640-480.bmp.gz"},
		{"/usr/share/locale///", "en", 7680, 4320, "bmp.gz", "/usr/share/locale/en/LC_IMAGES/fwupd-7680-4320.bmp.gz"},
		{"out", "pt_BR", 1920, 1080, "bmp", "out/pt_BR/LC_IMAGES/fwupd-1920-1080.bmp"},
	}
	for _, tt := range tests {
		got := NewTemplate(tt.dir).Path(tt.lang, tt.w, tt.h, tt.suffix)
		if got != tt.want {
			t.Errorf("Path(%q, %q, %d, %d) = %q, want %q", tt.dir, tt.lang, tt.w, tt.h, got, tt.want)
		}
	}
}

func TestNewTemplateKeepsRoot(t *testing.T) {
	if got := NewTemplate("/").Directory; got != "/" {
		t.Errorf("Directory = %q, want %q", got, "/")
	}
}

func TestWriteFileCreatesParents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "de", "LC_IMAGES", "fwupd-640-480.bmp.gz")

	if Exists(path) {
		t.Fatal("file exists before write")
	}
	if err := WriteFile(path, []byte("data")); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if !Exists(path) {
		t.Fatal("file missing after write")
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "data" {
		t.Errorf("content = %q", got)
	}

	info, err := os.Stat(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if !info.IsDir() {
		t.Error("parent is not a directory")
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the output file, found %d entries", len(entries))
	}
}

func TestDisplayPath(t *testing.T) {
	const p = "/tmp/dest/usr/share/locale/de/LC_IMAGES/fwupd-640-480.bmp.gz"
	tests := []struct {
		name      string
		destDir   string
		buildRoot string
		want      string
	}{
		{"destdir", "/tmp/dest", "/tmp", "/usr/share/locale/de/LC_IMAGES/fwupd-640-480.bmp.gz"},
		{"build root fallback", "", "/tmp/dest/usr", "/share/locale/de/LC_IMAGES/fwupd-640-480.bmp.gz"},
		{"neither set", "", "", p},
		{"not a prefix", "/elsewhere", "", p},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayPath(p, tt.destDir, tt.buildRoot); got != tt.want {
				t.Errorf("DisplayPath = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatSize(t *testing.T) {
	if got := FormatSize(512); got != "0.5KB" {
		t.Errorf("FormatSize(512) = %q", got)
	}
	if got := FormatSize(3 * 1024 * 1024); got != "3.0MB" {
		t.Errorf("FormatSize(3MB) = %q", got)
	}
}
