package memutils

import (
	cerrors "github.com/cockroachdb/errors"
)

type Number interface {
	~int | ~uint | ~uint32 | ~uint64
}

// CheckPow2 returns an error wrapping PowerOfTwoError if number is not a power of two. Zero is
// accepted, since Vulkan reports unused alignment limits as zero.
func CheckPow2[T Number](number T, name string) error {
	if number&(number-1) != 0 {
		return cerrors.Wrapf(PowerOfTwoError, "%s is %d", name, number)
	}
	return nil
}

func Max[T Number](left, right T) T {
	if left > right {
		return left
	}
	return right
}

func Min[T Number](left, right T) T {
	if left < right {
		return left
	}
	return right
}
