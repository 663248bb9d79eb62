package main

import (
	"bufio"
	"math"
	"os"
	"strconv"
	"strings"
)

// history is a bounded sample series; the newest sample is last.
type history struct {
	vals []float64
	max  int
}

func newHistory(max int) *history { return &history{max: max} }

func (h *history) push(v float64) {
	h.vals = append(h.vals, v)
	if len(h.vals) > h.max {
		h.vals = h.vals[len(h.vals)-h.max:]
	}
}

func (h *history) latest() float64 {
	if len(h.vals) == 0 {
		return 0
	}
	return h.vals[len(h.vals)-1]
}

// snapshot is one reading of the counters rates are derived from.
type snapshot struct {
	cpuUser, cpuSystem, cpuIdle, cpuTotal uint64
	memTotalKB, memAvailKB                uint64
	netRx, netTx                          uint64
}

// collector samples /proc and keeps per-metric history. On systems
// without /proc it falls back to a synthetic waveform so the display
// still works.
type collector struct {
	user, system *history
	memUsed      *history
	rx, tx       *history

	memTotalGB float64

	prev     snapshot
	havePrev bool
	phase    float64
	interval float64
}

func newCollector(size int, interval float64) *collector {
	return &collector{
		user:     newHistory(size),
		system:   newHistory(size),
		memUsed:  newHistory(size),
		rx:       newHistory(size),
		tx:       newHistory(size),
		interval: interval,
	}
}

// sample takes one reading and appends it to every history.
func (c *collector) sample() {
	cur, ok := readSnapshot()
	if !ok {
		c.synthetic()
		return
	}

	if c.havePrev {
		du := float64(cur.cpuUser - c.prev.cpuUser)
		ds := float64(cur.cpuSystem - c.prev.cpuSystem)
		dt := float64(cur.cpuTotal - c.prev.cpuTotal)
		if dt > 0 {
			c.user.push(100 * du / dt)
			c.system.push(100 * ds / dt)
		} else {
			c.user.push(0)
			c.system.push(0)
		}
		c.rx.push(float64(cur.netRx-c.prev.netRx) / 1024 / c.interval)
		c.tx.push(float64(cur.netTx-c.prev.netTx) / 1024 / c.interval)
	} else {
		c.user.push(0)
		c.system.push(0)
		c.rx.push(0)
		c.tx.push(0)
	}

	if cur.memTotalKB > 0 {
		c.memTotalGB = float64(cur.memTotalKB) / 1024 / 1024
		used := float64(cur.memTotalKB-cur.memAvailKB) / float64(cur.memTotalKB)
		c.memUsed.push(100 * used)
	} else {
		c.memUsed.push(0)
	}

	c.prev = cur
	c.havePrev = true
}

func (c *collector) synthetic() {
	c.phase += 0.15
	c.user.push(35 + 25*math.Sin(c.phase))
	c.system.push(12 + 8*math.Sin(c.phase*1.7+1))
	c.memUsed.push(55 + 10*math.Sin(c.phase*0.3))
	c.rx.push(200 + 150*math.Sin(c.phase*0.9))
	c.tx.push(80 + 60*math.Sin(c.phase*1.1+2))
	c.memTotalGB = 16
}

func readSnapshot() (snapshot, bool) {
	var s snapshot
	if !readStat(&s) || !readMeminfo(&s) {
		return s, false
	}
	readNetDev(&s) // optional; zero rates without it
	return s, true
}

// readStat parses the aggregate cpu line of /proc/stat.
func readStat(s *snapshot) bool {
	f, err := os.Open("/proc/stat")
	if err != nil {
		return false
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 5 || fields[0] != "cpu" {
			continue
		}
		var vals []uint64
		for _, fs := range fields[1:] {
			n, err := strconv.ParseUint(fs, 10, 64)
			if err != nil {
				return false
			}
			vals = append(vals, n)
		}
		s.cpuUser = vals[0] + vals[1] // user + nice
		s.cpuSystem = vals[2]
		s.cpuIdle = vals[3]
		for _, v := range vals {
			s.cpuTotal += v
		}
		return true
	}
	return false
}

func readMeminfo(s *snapshot) bool {
	f, err := os.Open("/proc/meminfo")
	if err != nil {
		return false
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 2 {
			continue
		}
		n, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			continue
		}
		switch fields[0] {
		case "MemTotal:":
			s.memTotalKB = n
		case "MemAvailable:":
			s.memAvailKB = n
		}
	}
	return s.memTotalKB > 0
}

// readNetDev sums rx and tx byte counters over all interfaces except
// loopback.
func readNetDev(s *snapshot) {
	f, err := os.Open("/proc/net/dev")
	if err != nil {
		return
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		i := strings.IndexByte(line, ':')
		if i < 0 {
			continue
		}
		name := strings.TrimSpace(line[:i])
		if name == "lo" {
			continue
		}
		fields := strings.Fields(line[i+1:])
		if len(fields) < 9 {
			continue
		}
		rx, err1 := strconv.ParseUint(fields[0], 10, 64)
		tx, err2 := strconv.ParseUint(fields[8], 10, 64)
		if err1 == nil && err2 == nil {
			s.netRx += rx
			s.netTx += tx
		}
	}
}
