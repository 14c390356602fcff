//go:build !unix

package command

import "os"

func mapFile(name string) ([]byte, func() error, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, nil, err
	}
	return b, noRelease, nil
}
