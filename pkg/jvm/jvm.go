// SPDX-License-Identifier: Apache-2.0

// Package jvm inspects JDK installations on disk: it reads the release
// metadata of a JDK home and orders Java versions.
package jvm

import (
	"bytes"
	"path"
	"strings"

	"github.com/joomcode/errorx"
	"github.com/spf13/afero"
	"github.com/subosito/gotenv"
	"howett.net/plist"
)

const (
	releaseFile   = "release"
	bundleHome    = "Contents/Home"
	bundleInfo    = "Info.plist"
	SourceRelease = "release"
	SourcePlist   = "plist"
)

// Release describes the JDK installed in a home directory.
type Release struct {
	Home           string `yaml:"home" json:"home"`
	JavaVersion    string `yaml:"javaVersion" json:"javaVersion"`
	RuntimeVersion string `yaml:"runtimeVersion,omitempty" json:"runtimeVersion,omitempty"`
	Implementor    string `yaml:"implementor,omitempty" json:"implementor,omitempty"`
	OSName         string `yaml:"osName,omitempty" json:"osName,omitempty"`
	OSArch         string `yaml:"osArch,omitempty" json:"osArch,omitempty"`
	BundleID       string `yaml:"bundleId,omitempty" json:"bundleId,omitempty"`
	Source         string `yaml:"source" json:"source"`
}

// Prober reads JDK metadata from a filesystem.
type Prober interface {
	// Probe returns the release of the JDK at home. It reads the release file
	// of the home, or of Contents/Home for a macOS bundle root, and falls back
	// to the bundle Info.plist.
	Probe(home string) (*Release, error)
}

type prober struct {
	fs afero.Fs
}

// bundlePlist is the subset of a macOS JDK bundle Info.plist we read.
type bundlePlist struct {
	BundleID   string `plist:"CFBundleIdentifier"`
	BundleName string `plist:"CFBundleName"`
	JavaVM     struct {
		Version         string `plist:"JVMVersion"`
		PlatformVersion string `plist:"JVMPlatformVersion"`
		Vendor          string `plist:"JVMVendor"`
	} `plist:"JavaVM"`
}

// New returns a Prober reading from fs.
func New(fs afero.Fs) Prober {
	return &prober{fs: fs}
}

func (p *prober) Probe(home string) (*Release, error) {
	if home == "" {
		return nil, errorx.IllegalArgument.New("jdk home is required")
	}

	for _, candidate := range []string{path.Join(home, releaseFile), path.Join(home, bundleHome, releaseFile)} {
		ok, err := afero.Exists(p.fs, candidate)
		if err != nil {
			return nil, NewProbeError(err, home)
		}
		if ok {
			return p.readRelease(home, candidate)
		}
	}

	info := path.Join(home, "Contents", bundleInfo)
	if strings.HasSuffix(path.Clean(home), "/"+bundleHome) {
		info = path.Join(path.Dir(path.Clean(home)), bundleInfo)
	}
	ok, err := afero.Exists(p.fs, info)
	if err != nil {
		return nil, NewProbeError(err, home)
	}
	if ok {
		return p.readPlist(home, info)
	}

	return nil, NewNotFoundError(home)
}

func (p *prober) readRelease(home string, file string) (*Release, error) {
	data, err := afero.ReadFile(p.fs, file)
	if err != nil {
		return nil, NewProbeError(err, home)
	}

	env, err := gotenv.StrictParse(bytes.NewReader(data))
	if err != nil {
		return nil, NewProbeError(err, home)
	}
	if env["JAVA_VERSION"] == "" {
		return nil, NewProbeError(errorx.IllegalFormat.New("%s has no JAVA_VERSION", file), home)
	}

	return &Release{
		Home:           home,
		JavaVersion:    env["JAVA_VERSION"],
		RuntimeVersion: env["JAVA_RUNTIME_VERSION"],
		Implementor:    env["IMPLEMENTOR"],
		OSName:         env["OS_NAME"],
		OSArch:         env["OS_ARCH"],
		Source:         SourceRelease,
	}, nil
}

func (p *prober) readPlist(home string, file string) (*Release, error) {
	data, err := afero.ReadFile(p.fs, file)
	if err != nil {
		return nil, NewProbeError(err, home)
	}

	var info bundlePlist
	if _, err = plist.Unmarshal(data, &info); err != nil {
		return nil, NewProbeError(err, home)
	}
	if info.JavaVM.Version == "" {
		return nil, NewProbeError(errorx.IllegalFormat.New("%s has no JavaVM.JVMVersion", file), home)
	}

	return &Release{
		Home:        home,
		JavaVersion: info.JavaVM.Version,
		Implementor: info.JavaVM.Vendor,
		OSName:      "Darwin",
		BundleID:    info.BundleID,
		Source:      SourcePlist,
	}, nil
}
