package cmd

// MockProcess is a mock implementation of the pinentry process interface.
// Useful for testing the password prompt without a real pinentry binary.
type MockProcess struct {
	value                                   string
	status                                  bool
	readlnerr, closeerr, starterr, writeerr error
	exit                                    int
	lines                                   []struct {
		line []byte
		err  error
	}
}

func (m *MockProcess) ReadLine() ([]byte, bool, error) {
	line := m.lines[0]
	m.lines = m.lines[1:]
	return line.line, m.status, line.err
}

func (m *MockProcess) Start(string, []string) error {
	return m.starterr
}

func (m *MockProcess) Close() error {
	return m.closeerr
}

func (m *MockProcess) Write([]byte) (int, error) {
	return m.exit, m.writeerr
}
