package logger_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/philipp01105/sinklog/global"
	"github.com/philipp01105/sinklog/logger"
)

// Route records to the console and a file.
func Example() {
	dir, _ := os.MkdirTemp("", "sinklog-example")
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "app.log")

	_ = logger.SetProfile(logger.Profile{
		Style:      logger.StyleNever,
		Timestamps: false,
		Writer:     os.Stdout,
	})
	_ = logger.EnableConsole(true)
	_ = logger.SetFile(path, false)

	global.Info("ready")
	global.Debug("hidden at the default level")

	_ = logger.Close()
	data, _ := os.ReadFile(path)
	fmt.Print(string(data))
	// Output:
	// [INFO  github.com/philipp01105/sinklog/logger_test] ready
	// [INFO  github.com/philipp01105/sinklog/logger_test] ready
}

// Load installation settings from YAML.
func ExampleParseProfile() {
	p, err := logger.ParseProfile([]byte("stream: stdout\nstyle: never\nenv_var: APP_LOG\n"))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(p.Stream, p.Style, p.EnvVar, p.Timestamps)
	// Output:
	// stdout never APP_LOG true
}
