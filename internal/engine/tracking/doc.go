// Package tracking describes document changes and maps positions across
// them. A ChangeSet captures the edits of one update transaction; a Mapper
// translates offsets from the pre-edit document to the post-edit one under
// an explicit stickiness bias.
package tracking
