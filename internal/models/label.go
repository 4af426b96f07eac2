package models

// Label holds the ordered tag set shared by a group of users. The contract
// is at most one label set per user; when the membership query matches more
// than one document the last match wins. Labels are read-only through the
// API.
type Label struct {
	Base
	Tags  StringList `gorm:"type:text" json:"tags"`
	Users StringList `gorm:"type:text" json:"users"`
}
