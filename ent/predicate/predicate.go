// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)

// StudySession is the predicate function for studysession builders.
type StudySession func(*sql.Selector)

// Upload is the predicate function for upload builders.
type Upload func(*sql.Selector)
