package tamperlog

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Console is an interactive command loop over a chain, meant for demos:
// append readings, tamper through the attack surface, then watch the
// verifier localize the damage.
type Console struct {
	Chain    *Chain
	Sensor   Sensor
	Attacker *Attacker
	In       io.Reader
	Out      io.Writer
}

const consoleHelp = `commands:
  append <timestamp> <value>  commit one reading
  sample                      read the sensor and commit
  list                        print the decoded chain
  tip                         print the current tip hash
  verify                      replay the chain against the anchor
  recommit                    recover from a stale anchor
  reset                       discard all history
  attack corrupt <pos> <val>  overwrite a value in place
  attack replace <pos> <row>  substitute an arbitrary row
  attack unlinked <ts> <val>  append a row ignoring the tip
  attack bare <ts> <val>      append a row without hashes
  attack clone                replace the log with a forged chain
  help                        this text
  exit                        quit`

// Run reads commands until EOF or exit. Command failures are printed,
// not fatal; the loop keeps going.
func (c *Console) Run() error {
	scanner := bufio.NewScanner(c.In)
	c.printf("tamper-aware logger console. type 'help' for commands.\n")
	for {
		c.printf("> ")
		if !scanner.Scan() {
			break
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "exit" || fields[0] == "quit" {
			break
		}
		if err := c.dispatch(fields); err != nil {
			c.printf("error: %v\n", err)
		}
	}
	return scanner.Err()
}

func (c *Console) dispatch(fields []string) error {
	switch fields[0] {
	case "help":
		c.printf("%s\n", consoleHelp)
	case "append":
		if len(fields) < 3 {
			return fmt.Errorf("usage: append <timestamp> <value>")
		}
		// Timestamps like "2024-01-01 00:00:05" split into two fields.
		value := fields[len(fields)-1]
		timestamp := strings.Join(fields[1:len(fields)-1], " ")
		rec, err := c.Chain.Append(timestamp, value)
		if err != nil {
			return err
		}
		RecordAppend()
		c.printf("appended: %s\n", rec.EntryHash)
	case "sample":
		if c.Sensor == nil {
			return fmt.Errorf("no sensor configured")
		}
		timestamp, value, err := c.Sensor.Read()
		if err != nil {
			return err
		}
		rec, err := c.Chain.Append(timestamp, value)
		if err != nil {
			return err
		}
		RecordAppend()
		c.printf("sampled %s = %s\nappended: %s\n", timestamp, value, rec.EntryHash)
	case "list":
		records, err := c.Chain.Records()
		if err != nil {
			return err
		}
		for i, rec := range records {
			c.printf("%4d  %s  %s  %s\n", i+1, rec.Timestamp, rec.Value, rec.EntryHash)
		}
		c.printf("%d records\n", len(records))
	case "tip":
		tip, err := c.Chain.CurrentTip()
		if err != nil {
			return err
		}
		c.printf("%s\n", tip)
	case "verify":
		res, err := c.Chain.Verify()
		if err != nil {
			return err
		}
		RecordVerification(res)
		c.printf("%s\n", res)
		if res.Recoverable() {
			c.printf("anchor is one commit behind; run 'recommit' to recover\n")
		}
	case "recommit":
		if err := c.Chain.RecommitAnchor(); err != nil {
			return err
		}
		c.printf("anchor recommitted\n")
	case "reset":
		if err := c.Chain.Reset(); err != nil {
			return err
		}
		RecordReset()
		c.printf("chain reset\n")
	case "attack":
		return c.attack(fields[1:])
	default:
		return fmt.Errorf("unknown command %q; type 'help'", fields[0])
	}
	return nil
}

func (c *Console) attack(fields []string) error {
	if c.Attacker == nil {
		return fmt.Errorf("attack surface not enabled")
	}
	if len(fields) == 0 {
		return fmt.Errorf("usage: attack <corrupt|replace|unlinked|bare|clone> ...")
	}
	switch fields[0] {
	case "corrupt":
		if len(fields) != 3 {
			return fmt.Errorf("usage: attack corrupt <pos> <value>")
		}
		pos, err := strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Errorf("bad position %q", fields[1])
		}
		if err := c.Attacker.CorruptValue(pos, fields[2]); err != nil {
			return err
		}
		c.printf("value at position %d overwritten\n", pos)
	case "replace":
		if len(fields) < 3 {
			return fmt.Errorf("usage: attack replace <pos> <row>")
		}
		pos, err := strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Errorf("bad position %q", fields[1])
		}
		if err := c.Attacker.ReplaceRow(pos, strings.Join(fields[2:], " ")); err != nil {
			return err
		}
		c.printf("row at position %d replaced\n", pos)
	case "unlinked":
		if len(fields) < 3 {
			return fmt.Errorf("usage: attack unlinked <timestamp> <value>")
		}
		value := fields[len(fields)-1]
		timestamp := strings.Join(fields[1:len(fields)-1], " ")
		if err := c.Attacker.AppendUnlinked(timestamp, value); err != nil {
			return err
		}
		c.printf("unlinked row appended\n")
	case "bare":
		if len(fields) < 3 {
			return fmt.Errorf("usage: attack bare <timestamp> <value>")
		}
		value := fields[len(fields)-1]
		timestamp := strings.Join(fields[1:len(fields)-1], " ")
		if err := c.Attacker.AppendBare(timestamp, value); err != nil {
			return err
		}
		c.printf("bare row appended\n")
	case "clone":
		records, err := c.Chain.Records()
		if err != nil {
			return err
		}
		readings := make([][2]string, len(records))
		for i, rec := range records {
			readings[i] = [2]string{rec.Timestamp, "0.0"}
		}
		if err := c.Attacker.ReplaceChain(readings); err != nil {
			return err
		}
		c.printf("log replaced with a forged chain of %d records\n", len(readings))
	default:
		return fmt.Errorf("unknown attack %q", fields[0])
	}
	return nil
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.Out, format, args...)
}
