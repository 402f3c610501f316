package testing

import (
	"os"
	"path"
	"runtime"
)

func init() {
	// cd to the project root before any test runs, so logs/ and file databases land in one place.
	// usage is
	//
	//   in some_test.go,
	//   import (
	//     _ "liyu1981.xyz/factory-monitor/pkg/testing"
	//   )

	_, filename, _, _ := runtime.Caller(0)           // here runtime will return current file path
	dir := path.Join(path.Dir(filename), "..", "..") // and by double .. we will go to the project root
	if err := os.Chdir(dir); err != nil {
		panic(err)
	}
}
