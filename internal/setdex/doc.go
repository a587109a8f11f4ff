// Package setdex collects parsed movesets into per-generation setdexes and
// renders them as the JavaScript object literals the damage calculator loads.
//
// Collect walks one generation's analyses directory, Serialize and Render
// produce the file text, and WriteFile replaces the output file in place.
package setdex
