package platform

import (
	"errors"
	"fmt"
	"syscall"
	"time"
	"unsafe"

	"animclock/internal/core/autopause"
)

var (
	procGetLastInputInfo = syscall.NewLazyDLL("user32.dll").NewProc("GetLastInputInfo")
	procGetTickCount64   = syscall.NewLazyDLL("kernel32.dll").NewProc("GetTickCount64")
)

type lastInputInfo struct {
	cbSize uint32
	dwTime uint32
}

type idleProvider struct{}

func newIdleProvider() autopause.IdleChecker {
	if procGetLastInputInfo.Find() != nil || procGetTickCount64.Find() != nil {
		return unsupportedIdleProvider{}
	}
	return idleProvider{}
}

func (idleProvider) IdleDuration() (time.Duration, error) {
	info := lastInputInfo{cbSize: uint32(unsafe.Sizeof(lastInputInfo{}))}
	ok, _, err := procGetLastInputInfo.Call(uintptr(unsafe.Pointer(&info)))
	if ok == 0 {
		if err != nil {
			return 0, fmt.Errorf("get last input info: %w", err)
		}
		return 0, errors.New("get last input info: unknown error")
	}

	ticks, _, _ := procGetTickCount64.Call()
	// GetLastInputInfo reports a 32-bit tick count that wraps every ~49.7 days.
	idleMillis := uint32(ticks) - info.dwTime
	return time.Duration(idleMillis) * time.Millisecond, nil
}

type unsupportedIdleProvider struct{}

func (unsupportedIdleProvider) IdleDuration() (time.Duration, error) {
	return 0, autopause.ErrIdleUnsupported
}
