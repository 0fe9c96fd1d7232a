package lib

import (
	"fmt"
	"log"
	"os"
	"path"

	"github.com/yeqown/go-qrcode"
)

// QRCodeFile renders content into a JPEG under TEMP_DIR and returns its
// path. An existing file for the same name is reused. The image is written
// to a temporary file and renamed into place so concurrent callers never
// see a partial file.
func QRCodeFile(name string, content string) (string, error) {
	tempdir := os.Getenv("TEMP_DIR")
	if tempdir == "" {
		tempdir = os.TempDir()
	}
	if err := os.MkdirAll(tempdir, 0o755); err != nil {
		return "", err
	}
	filepath := path.Join(tempdir, fmt.Sprintf("%s.jpeg", name))
	if _, err := os.Stat(filepath); err == nil {
		return filepath, nil
	}
	qrc, err := qrcode.New(content)
	if err != nil {
		return "", err
	}
	tmp, err := os.CreateTemp(tempdir, fmt.Sprintf("%s-*.jpeg.tmp", name))
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())
	err = qrc.SaveTo(tmp)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		log.Printf("Could not save qrcode to file [%s]: %s\n", filepath, err.Error())
		return "", err
	}
	if err = os.Rename(tmp.Name(), filepath); err != nil {
		return "", err
	}
	return filepath, nil
}
