package store

import (
	"strconv"

	"github.com/google/uuid"
)

// IDGenerator 生成记录ID
type IDGenerator interface {
	NewID() string
}

// IDFunc 函数形式的 IDGenerator
type IDFunc func() string

func (f IDFunc) NewID() string { return f() }

// TimeOrderedIDs 基于时间的 UUIDv7
type TimeOrderedIDs struct{}

func (TimeOrderedIDs) NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

const maxIDAttempts = 16

// uniqueID 生成集合内不重复的ID，生成器持续冲突时追加序号
func uniqueID(gen IDGenerator, exists func(string) bool) string {
	var id string
	for i := 0; i < maxIDAttempts; i++ {
		id = gen.NewID()
		if !exists(id) {
			return id
		}
	}
	for n := 1; ; n++ {
		candidate := id + "-" + strconv.Itoa(n)
		if !exists(candidate) {
			return candidate
		}
	}
}
