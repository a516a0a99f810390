// Package substitution derives the ordered rule set used to rename a term
// across file contents and path names, and applies it as a sequential fold.
//
// Rule order is part of the contract: compound forms such as "foo-agentd"
// precede the bare term so the bare rule cannot corrupt them first. Rules are
// applied one after another to the text produced by the previous rule, so a
// later rule may rewrite text an earlier rule produced.
package substitution
