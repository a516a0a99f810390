// Package pathmove moves files and directories either with a plain
// filesystem rename or with git mv inside the enclosing repository.
//
// Both strategies satisfy Mover so callers stay independent of git.
package pathmove
