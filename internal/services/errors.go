package services

import (
	"fmt"

	"talentflow/pkg/utils"
)

func dbError(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", utils.ErrDatabaseError, op, err)
}

func pageOrDefault(page, pageSize, defaultSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultSize
	}
	return page, pageSize
}
