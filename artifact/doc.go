// SPDX-License-Identifier: MIT

// Package artifact reads and writes the flat text files exchanged with the
// external community-detection tool and the tools around it:
//
//   - weighted edge list ("coolist"): `i j weight` per line, i < j, no header,
//     never a self-loop row;
//   - ingredient labels: one name per line in id order;
//   - hierarchy assignment stream: `node group` per line, levels concatenated;
//   - CSR export: rows, cols, row pointers, column indices, data, one value
//     per line.
//
// Every failure of the underlying io.Reader / io.Writer is wrapped with ErrIO;
// content that cannot be parsed is reported with ErrMalformed.
package artifact
