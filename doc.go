// Copyright (c) 2026 Antti Kivi. All rights reserved.

// Package toml implements a decoder for TOML 1.0.0.
//
// # Decoding
//
// Parse decodes a complete document held in memory; Decode does the same
// after reading an io.Reader to completion:
//
//	root, err := toml.Parse(data)
//	if err != nil {
//	    log.Fatalf("parse failed: %v", err)
//	}
//	v, ok := root.Get("package")
//
// ParseWithDiagnostics and DecodeWithDiagnostics additionally return a
// *Diagnostics describing a failure's line, column, and source snippet:
//
//	root, diag, err := toml.ParseWithDiagnostics(data)
//	if err != nil {
//	    log.Fatal(diag)
//	}
//
// # Values
//
// Every decoded value implements Value. Scalars are String, Integer,
// Float, and Bool; the four RFC 3339 variants are LocalDate, LocalTime,
// LocalDateTime, and DateTime; containers are *Table and *Array. A type
// switch on the Value returned by Table.Get or Array.At recovers the
// concrete variant:
//
//	switch x := v.(type) {
//	case toml.String:
//	    fmt.Println(x.Text)
//	case toml.Integer:
//	    fmt.Println(x.N)
//	case *toml.Table:
//	    fmt.Println(x.Len())
//	}
//
// # Scanning
//
// The Scanner type that Parse drives internally is exported for callers
// that need a lower-level view of a document's token stream, such as a
// syntax highlighter, rather than its decoded value tree.
package toml
