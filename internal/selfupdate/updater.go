package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"
)

var (
	ErrDevBuild            = errors.New("cannot update a development build")
	ErrAlreadyLatest       = errors.New("already running the latest version")
	ErrChecksum            = errors.New("checksum verification failed")
	ErrUnsupportedPlatform = errors.New("no release build for this platform")
)

const (
	binaryName    = "svenska"
	checksumsFile = "checksums.txt"
)

// Stage names a step of Update.
type Stage string

const (
	StageCheck    Stage = "check"
	StageDownload Stage = "download"
	StageVerify   Stage = "verify"
	StageInstall  Stage = "install"
	StageDone     Stage = "done"
)

// UpdateInput selects the running version and, optionally, the release to
// install. An empty TargetVersion installs the latest release.
type UpdateInput struct {
	CurrentVersion string
	TargetVersion  string
}

// UpdateProgress is reported once per stage.
type UpdateProgress struct {
	Stage   Stage
	Message string
}

// platform is the release archive for one OS and architecture.
type platform struct {
	archive string
	binary  string
	zipped  bool
}

var releaseArch = map[string]string{
	"amd64": "x86_64",
	"arm64": "arm64",
	"386":   "i386",
}

func currentPlatform() (platform, error) {
	return platformFor(runtime.GOOS, runtime.GOARCH)
}

// platformFor maps a GOOS/GOARCH pair onto the goreleaser archive names.
// macOS ships one universal archive.
func platformFor(goos, goarch string) (platform, error) {
	if goos == "darwin" {
		return platform{archive: binaryName + "_Darwin_all.tar.gz", binary: binaryName}, nil
	}
	arch, ok := releaseArch[goarch]
	if !ok {
		return platform{}, fmt.Errorf("%w: %s/%s", ErrUnsupportedPlatform, goos, goarch)
	}
	switch goos {
	case "linux":
		return platform{archive: fmt.Sprintf("%s_Linux_%s.tar.gz", binaryName, arch), binary: binaryName}, nil
	case "windows":
		return platform{archive: fmt.Sprintf("%s_Windows_%s.zip", binaryName, arch), binary: binaryName + ".exe", zipped: true}, nil
	}
	return platform{}, fmt.Errorf("%w: %s/%s", ErrUnsupportedPlatform, goos, goarch)
}

// Update downloads the release archive for this platform, checks it against
// the release's checksums.txt and swaps it in for the running executable.
func (c *Checker) Update(ctx context.Context, input *UpdateInput, progress func(UpdateProgress)) error {
	report := func(s Stage, format string, args ...any) {
		if progress != nil {
			progress(UpdateProgress{Stage: s, Message: fmt.Sprintf(format, args...)})
		}
	}

	if v := strings.TrimSpace(input.CurrentVersion); v == "" || v == "(devel)" {
		return ErrDevBuild
	}

	tag := input.TargetVersion
	if tag == "" {
		report(StageCheck, "Checking for the latest release...")
		res, err := c.Check(ctx, &CheckInput{Version: input.CurrentVersion})
		if err != nil {
			return fmt.Errorf("check for updates: %w", err)
		}
		if !res.UpdateAvailable {
			return ErrAlreadyLatest
		}
		tag = res.LatestVersion
	}

	plat, err := currentPlatform()
	if err != nil {
		return err
	}

	report(StageDownload, "Downloading %s (%s)...", tag, plat.archive)
	sumsData, err := c.fetch(ctx, c.assetURL(tag, checksumsFile))
	if err != nil {
		return fmt.Errorf("fetch checksums: %w", err)
	}
	sums, err := parseChecksums(bytes.NewReader(sumsData))
	if err != nil {
		return fmt.Errorf("parse checksums: %w", err)
	}
	want, ok := sums[plat.archive]
	if !ok {
		return fmt.Errorf("%s lists no checksum for %s", checksumsFile, plat.archive)
	}

	archive, err := c.fetch(ctx, c.assetURL(tag, plat.archive))
	if err != nil {
		return fmt.Errorf("fetch archive: %w", err)
	}

	report(StageVerify, "Verifying checksum...")
	if err := checkDigest(archive, want); err != nil {
		return err
	}
	bin, err := plat.unpack(archive)
	if err != nil {
		return fmt.Errorf("unpack %s: %w", plat.archive, err)
	}

	report(StageInstall, "Installing...")
	target, err := c.execPath()
	if err != nil {
		return fmt.Errorf("resolve executable path: %w", err)
	}
	if err := replaceExecutable(target, bin); err != nil {
		return fmt.Errorf("install: %w", err)
	}

	report(StageDone, "Updated to %s", tag)
	return nil
}

func (c *Checker) assetURL(tag, name string) string {
	return fmt.Sprintf("%s/%s/%s/releases/download/%s/%s",
		strings.TrimRight(c.downloadBaseURL, "/"), c.owner, c.repo, tag, name)
}

// parseChecksums reads "<sha256>  <file>" lines as written by sha256sum and
// goreleaser. A leading '*' on the file name (binary mode) is dropped.
// Lines that do not have exactly two fields are ignored.
func parseChecksums(r io.Reader) (map[string]string, error) {
	out := map[string]string{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) != 2 {
			continue
		}
		out[strings.TrimPrefix(fields[1], "*")] = strings.ToLower(fields[0])
	}
	return out, sc.Err()
}

func checkDigest(data []byte, wantHex string) error {
	sum := sha256.Sum256(data)
	got := hex.EncodeToString(sum[:])
	if !strings.EqualFold(got, wantHex) {
		return fmt.Errorf("%w: want %s, got %s", ErrChecksum, wantHex, got)
	}
	return nil
}

// unpack returns the executable from a release archive.
func (p platform) unpack(data []byte) ([]byte, error) {
	if p.zipped {
		return unzipFile(data, p.binary)
	}
	return untarFile(data, p.binary)
}

func untarFile(data []byte, name string) ([]byte, error) {
	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%q not found in archive", name)
		}
		if err != nil {
			return nil, err
		}
		if hdr.Typeflag == tar.TypeReg && path.Base(hdr.Name) == name {
			return io.ReadAll(tr)
		}
	}
}

func unzipFile(data []byte, name string) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	for _, f := range zr.File {
		if f.FileInfo().IsDir() || path.Base(f.Name) != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer func() { _ = rc.Close() }()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("%q not found in archive", name)
}

// replaceExecutable writes bin next to target and renames it over target,
// keeping target's permission bits. The rename is atomic on one filesystem.
func replaceExecutable(target string, bin []byte) error {
	info, err := os.Stat(target)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+binaryName+"-update-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(bin); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, info.Mode().Perm()); err != nil {
		return err
	}
	return os.Rename(tmpName, target)
}
