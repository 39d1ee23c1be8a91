package domain

import (
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// ArtifactExtension is the file extension of fetched package artifacts.
const ArtifactExtension = "apk"

// ArtifactFileName returns "<name>-<version>.apk" for the package.
// Names or versions that are empty, contain a path separator or are ".." are rejected.
func ArtifactFileName(p *Package) (string, error) {
	name, version := p.Name.String(), p.Version.String()
	if err := validateArtifactPart(name); err != nil {
		return "", zerr.With(err, "name", name)
	}
	if err := validateArtifactPart(version); err != nil {
		return "", zerr.With(zerr.With(err, "name", name), "version", version)
	}
	return name + "-" + version + "." + ArtifactExtension, nil
}

// ArtifactPath joins the output directory and the artifact file name.
func ArtifactPath(outputDir string, p *Package) (string, error) {
	file, err := ArtifactFileName(p)
	if err != nil {
		return "", err
	}
	if outputDir == "" {
		outputDir = DefaultOutputDir
	}
	return filepath.Join(outputDir, file), nil
}

// SourceLocator returns "<repository>/<name>-<version>.apk".
func SourceLocator(repositoryURL string, p *Package) (string, error) {
	file, err := ArtifactFileName(p)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(repositoryURL, "/") + "/" + file, nil
}

func validateArtifactPart(v string) error {
	switch {
	case v == "":
		return zerr.Wrap(ErrInvalidArtifactName, "empty artifact name component")
	case v == "." || v == ".." || strings.Contains(v, ".."):
		return zerr.Wrap(ErrInvalidArtifactName, "artifact name component contains '..'")
	case strings.ContainsAny(v, `/\`) || strings.ContainsRune(v, 0):
		return zerr.Wrap(ErrInvalidArtifactName, "artifact name component contains a path separator")
	}
	return nil
}
