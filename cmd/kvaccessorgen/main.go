package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/suparena/kvaccessor"
	"github.com/suparena/kvaccessor/processor"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")
	schemaFlag  = flag.String("schema", "kvaccessor.yaml", "Path to the accessor schema")
	outFlag     = flag.String("out", "accessors_gen.go", "Path of the generated Go file")
)

func main() {
	flag.Parse()

	// Handle version flag
	if *versionFlag || *vFlag {
		info := kvaccessor.GetVersionInfo()
		fmt.Printf("KVAccessor kvaccessorgen version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	// Run the processor
	if err := processor.Run(*schemaFlag, *outFlag); err != nil {
		log.Fatalf("kvaccessorgen: %v", err)
	}
}
