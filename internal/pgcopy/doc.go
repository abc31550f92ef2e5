// Package pgcopy creates tables from delimited-file headers and bulk
// loads the data with PostgreSQL's COPY protocol.
//
// Tables are created with every column typed varchar; column names come
// from the file header, normalized to safe lowercase identifiers. The
// byte stream is sanitized on the way in: legacy G-NAF extracts contain
// stray Latin-1 0xC9 bytes and NULs that PostgreSQL's CSV reader
// rejects.
package pgcopy
