// SPDX-License-Identifier: Apache-2.0

package toolchains

import (
	"bytes"
	"encoding/xml"
)

const (
	Namespace      = "http://maven.apache.org/TOOLCHAINS/1.1.0"
	SchemaLocation = Namespace + " http://maven.apache.org/xsd/toolchains-1.1.0.xsd"
	xsiNamespace   = "http://www.w3.org/2001/XMLSchema-instance"
)

// Toolchains is the root element of a Maven toolchains.xml document.
type Toolchains struct {
	XMLName        xml.Name    `xml:"toolchains"`
	Xmlns          string      `xml:"xmlns,attr,omitempty"`
	XmlnsXsi       string      `xml:"xmlns:xsi,attr,omitempty"`
	SchemaLocation string      `xml:"xsi:schemaLocation,attr,omitempty"`
	Toolchains     []Toolchain `xml:"toolchain"`
}

// Toolchain is a single <toolchain> element.
type Toolchain struct {
	Type          string        `xml:"type"`
	Provides      Provides      `xml:"provides"`
	Configuration Configuration `xml:"configuration"`
}

// Provides holds the requirement tags a toolchain satisfies.
type Provides struct {
	Version string `xml:"version,omitempty"`
}

// Configuration holds the tool specific configuration of a toolchain.
type Configuration struct {
	JDKHome string `xml:"jdkHome"`
}

// NewToolchains converts resolved entries into the descriptor model.
func NewToolchains(nt NodeToolchains) Toolchains {
	doc := Toolchains{
		Xmlns:          Namespace,
		XmlnsXsi:       xsiNamespace,
		SchemaLocation: SchemaLocation,
		Toolchains:     make([]Toolchain, 0, len(nt.Entries)),
	}
	for _, e := range nt.Entries {
		doc.Toolchains = append(doc.Toolchains, Toolchain{
			Type:          ToolchainTypeJDK,
			Provides:      Provides{Version: e.JDKName},
			Configuration: Configuration{JDKHome: e.Home},
		})
	}
	return doc
}

// Entries returns the jdk toolchains of the document as entries.
func (t Toolchains) Entries() []Entry {
	var entries []Entry
	for _, tc := range t.Toolchains {
		if tc.Type != ToolchainTypeJDK {
			continue
		}
		entries = append(entries, Entry{JDKName: tc.Provides.Version, Home: tc.Configuration.JDKHome})
	}
	return entries
}

func encodeToolchains(nt NodeToolchains) ([]byte, error) {
	body, err := xml.MarshalIndent(NewToolchains(nt), "", "  ")
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.Write(body)
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func decodeToolchains(data []byte) (Toolchains, error) {
	var doc Toolchains
	if err := xml.Unmarshal(data, &doc); err != nil {
		return Toolchains{}, err
	}
	return doc, nil
}
