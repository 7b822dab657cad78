package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

func init() {
	log.SetFlags(0)
}

func main() {
	all := false

	switch len(os.Args) {
	case 1:
	case 2:
		if os.Args[1] != "--all" {
			printUsage()
			os.Exit(1)
		}
		all = true
	default:
		printUsage()
		os.Exit(1)
	}

	rootPath, err := os.Getwd()
	if err != nil {
		log.Fatalln("get working directory:", err)
	}

	cleaner := NewCleaner(all)

	err = cleaner.Clean(rootPath)
	if err != nil {
		cleaner.fatalln("cleanup:", err)
	}
}

func printUsage() {
	bin := filepath.Base(os.Args[0])

	fmt.Fprintf(os.Stderr, "Usage:\n")
	fmt.Fprintf(os.Stderr, "%s - remove build artifacts below the current directory\n", bin)
	fmt.Fprintf(os.Stderr, "%s --all - also remove IDE caches\n", bin)
}
