//go:build linux

package system

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

const (
	evKey = 0x01

	// Linux input-event-codes.h
	keyS  = 31
	keyF4 = 62
)

// KeyActions binds the clock's two physical inputs: F4 exits, S toggles
// the share-QR overlay.
type KeyActions struct {
	OnExit          func()
	OnOverlayToggle func()
}

// StartKeyWatcher watches Linux evdev devices under /dev/input/event* and
// dispatches KeyActions on key-down.
//
// It is best-effort: if no input devices are available, it logs and returns.
func StartKeyWatcher(ctx context.Context, actions KeyActions) {
	log := logrus.WithField("component", "input")
	if actions.OnExit == nil && actions.OnOverlayToggle == nil {
		return
	}

	// Determine input_event size based on arch timeval size.
	// input_event = timeval + u16 type + u16 code + s32 value.
	tvSize := int(binary.Size(unix.Timeval{}))
	eventSize := tvSize + 2 + 2 + 4
	if eventSize <= 0 {
		eventSize = 24
	}

	paths, err := filepath.Glob("/dev/input/event*")
	if err != nil || len(paths) == 0 {
		log.Info("no evdev devices found, key bindings inactive")
		return
	}

	var exitOnce sync.Once
	triggerExit := func() {
		exitOnce.Do(func() {
			log.Info("exit key pressed")
			if actions.OnExit != nil {
				actions.OnExit()
			}
		})
	}

	for _, path := range paths {
		p := path
		go func() {
			fd, err := unix.Open(p, unix.O_RDONLY|unix.O_NONBLOCK, 0)
			if err != nil {
				return
			}
			f := os.NewFile(uintptr(fd), p)
			defer func() {
				_ = f.Close()
			}()

			buf := make([]byte, 4096)

			for {
				select {
				case <-ctx.Done():
					return
				default:
				}

				pollFds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
				_, pollErr := unix.Poll(pollFds, 250)
				if pollErr != nil {
					// Device might have gone away.
					return
				}
				if pollFds[0].Revents&unix.POLLIN == 0 {
					continue
				}

				n, readErr := unix.Read(fd, buf)
				if readErr != nil {
					if readErr == unix.EAGAIN || readErr == unix.EINTR {
						continue
					}
					return
				}
				if n < eventSize {
					continue
				}

				// Parse as a sequence of input_event records.
				for off := 0; off+eventSize <= n; off += eventSize {
					rec := buf[off : off+eventSize]
					// type and code are immediately after timeval.
					typ := binary.LittleEndian.Uint16(rec[tvSize : tvSize+2])
					code := binary.LittleEndian.Uint16(rec[tvSize+2 : tvSize+4])
					value := int32(binary.LittleEndian.Uint32(rec[tvSize+4 : tvSize+8]))
					if typ != evKey || value != 1 {
						continue
					}
					switch code {
					case keyF4:
						triggerExit()
						// Give the app a moment to unwind; then stop reading.
						time.Sleep(50 * time.Millisecond)
						return
					case keyS:
						if actions.OnOverlayToggle != nil {
							actions.OnOverlayToggle()
						}
					}
				}
			}
		}()
	}
}
