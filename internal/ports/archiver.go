package ports

// ArchiverPort writes every regular file found under sourceDir into a
// single ZIP archive at outputPath, entries named by path relative to
// sourceDir. Returns the number of files archived. Entry order is
// filesystem-dependent.
type ArchiverPort interface {
	Archive(sourceDir string, outputPath string) (int, error)
}
