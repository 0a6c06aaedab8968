package paths

import (
	"os"
	"path/filepath"
)

const (
	AppDirName     = "mkicons"
	ConfigFileName = "mkicons-config.json"
	DBFileName     = "mkicons.db"
	DirPerm        = 0755
	FilePerm       = 0644
)

// writeFile is swapped in tests to simulate a failed write.
var writeFile = os.WriteFile

// AtomicWrite writes data to path via a temporary file + rename to avoid
// partial writes. The parent directory is created if needed.
func AtomicWrite(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := writeFile(tmp, data, FilePerm); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// DataDir returns the platform-specific data directory for mkicons:
//   - Windows: %APPDATA%\mkicons
//   - Unix:    ~/.config/mkicons
//
// Falls back to os.TempDir()/mkicons if neither is available.
func DataDir() string {
	if appdata := os.Getenv("APPDATA"); appdata != "" {
		return filepath.Join(appdata, AppDirName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), AppDirName)
	}
	return filepath.Join(home, ".config", AppDirName)
}

// DBPath returns the location of the run history database.
func DBPath() string {
	return filepath.Join(DataDir(), DBFileName)
}
