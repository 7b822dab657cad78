package main

// All names are lowercase and matched against lowercased base names.
var (
	// Build output directories
	baseDirNames = []string{"_output", "build"}

	// Compiler and linker artifacts
	baseFileExts = []string{
		".obj", ".o", ".a",
		".pdb", ".ilk", ".idb", ".exp",
		".ncb", ".sdf", ".suo", ".user", ".aps",
		".pch", ".res", ".tlog", ".lastbuildstate"}

	// Artifact files without extension
	baseBareNames = []string{"core"}

	// Visual Studio cache files, removed in --all mode only
	ideCacheFileExts = []string{".db", ".opendb", ".ipch"}
)

const (
	// Visual Studio cache directory, removed in --all mode only
	ideCacheDirName = ".vs"
)
