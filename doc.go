// Package carr converts raw bytes into the source text of a C character
// array, ready to be compiled into another program.
//
// This package is built for streaming: the Transcoder is an io.Writer that
// escapes each byte for inclusion in a C string literal and wraps the
// literal into adjacent quoted lines bounded by a configurable line length.
// All formatting state lives on the Transcoder, so the output never depends
// on how the input bytes are grouped into writes.
//
// Core properties:
//   - Streaming escape and wrap through io.Writer/io.ByteWriter
//   - Output independent of input chunk boundaries
//   - Fixed escape table for the twelve bytes C source cannot carry raw
//   - Decode reverses the transformation for round-trip verification
//
// Example:
//
//	var out bytes.Buffer
//	lines, err := carr.Transcode(carr.Request{
//		Reader:     strings.NewReader("bytes in, C source out\n"),
//		Writer:     &out,
//		Name:       "banner",
//		SourceName: "banner.txt",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(lines)
//
// The command line front end lives in cmd/carr.
package carr
