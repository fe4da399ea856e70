// Package sheet moves tabular permit data between memory, CSV, and Excel.
//
// A Sheet groups rows of header-keyed string cells into named worksheets.
// CSV covers the single-worksheet case; Excel round-trips whole workbooks
// via excelize, including the styled permit-data template.
package sheet
