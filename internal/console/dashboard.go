package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/msarvaro/gastro-sub000/internal/poller"
	"github.com/msarvaro/gastro-sub000/internal/transport"
	"github.com/msarvaro/gastro-sub000/internal/view"
)

// Snapshot is one fetched-filtered-projected cycle of a view: the rendered
// table plus the raw status of every visible row, keyed by id. Actions verify
// their target against the latest snapshot before any request goes out, so a
// second click on a row that already left the view is dropped here, not
// re-submitted.
type Snapshot struct {
	Table  view.Table
	Status map[string]string
}

// ActionFunc performs one mutation; status is the row's raw status from the
// current snapshot, arg the optional trailing argument from the command line.
type ActionFunc func(ctx context.Context, id, status, arg string) error

// View is one role screen: a loader running the fetch -> filter -> project
// pipeline and the actions its rows accept.
type View struct {
	Name    string
	Load    func(ctx context.Context, crit view.Criteria, lang string) (Snapshot, error)
	Actions map[Action]ActionFunc
}

// Dashboard drives one role's screens: poll, render, dispatch.
type Dashboard struct {
	Role  string
	lang  string
	views []*View
	out   io.Writer
	poll  *poller.Poller

	mu      sync.Mutex
	active  int
	crit    view.Criteria
	current Snapshot
}

func NewDashboard(role, lang string, interval time.Duration, out io.Writer, views []*View) *Dashboard {
	return &Dashboard{
		Role:  role,
		lang:  lang,
		views: views,
		out:   out,
		poll:  poller.New(interval),
	}
}

// Run blocks until the input stream closes, "quit" arrives, or the context
// ends. All rendering happens under the dashboard mutex; the poller and the
// command loop never interleave partial cycles.
func (d *Dashboard) Run(ctx context.Context, in io.Reader) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := d.refresh(runCtx); err != nil {
		return err
	}

	d.poll.Start(runCtx, d.refresh)
	defer d.poll.Stop()

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-runCtx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-runCtx.Done():
			return runCtx.Err()
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			quit, err := d.handle(runCtx, line)
			if err != nil {
				d.notify("error: %v", err)
			}
			if quit {
				return nil
			}
		}
	}
}

func (d *Dashboard) handle(ctx context.Context, line string) (quit bool, err error) {
	cmd, err := ParseCommand(line)
	if err != nil {
		return false, err
	}

	switch cmd.Kind {
	case CmdQuit:
		return true, nil
	case CmdHelp:
		d.printHelp()
		return false, nil
	case CmdRefresh:
		return false, d.refresh(ctx)
	case CmdView:
		return false, d.switchView(ctx, cmd.Arg)
	case CmdSearch:
		d.mu.Lock()
		d.crit.Search = cmd.Arg
		d.mu.Unlock()
		return false, d.refresh(ctx)
	case CmdFilter:
		if err := d.setFilter(cmd.ID, cmd.Arg); err != nil {
			return false, err
		}
		return false, d.refresh(ctx)
	case CmdClear:
		d.mu.Lock()
		d.crit = view.Criteria{}
		d.mu.Unlock()
		return false, d.refresh(ctx)
	case CmdAction:
		return false, d.Dispatch(ctx, cmd)
	default:
		return false, fmt.Errorf("unknown command")
	}
}

func (d *Dashboard) setFilter(field, value string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	switch field {
	case "status":
		d.crit.Status = value
	case "category":
		d.crit.Category = value
	case "branch":
		d.crit.Branch = value
	default:
		return fmt.Errorf("unknown filter field %q", field)
	}
	return nil
}

func (d *Dashboard) switchView(ctx context.Context, name string) error {
	d.mu.Lock()
	found := -1
	for i, v := range d.views {
		if v.Name == name {
			found = i
			break
		}
	}
	if found == -1 {
		d.mu.Unlock()
		return fmt.Errorf("no view %q for role %s", name, d.Role)
	}
	d.active = found
	d.crit = view.Criteria{}
	d.current = Snapshot{}
	d.mu.Unlock()

	// restart, not accumulate: only the active view polls
	d.poll.Start(ctx, d.refresh)
	return d.refresh(ctx)
}

// refresh runs one fetch -> filter -> render cycle for the active view. A
// result that arrives after the context was cancelled belongs to a view the
// user already left and is dropped unrendered.
func (d *Dashboard) refresh(ctx context.Context) error {
	d.mu.Lock()
	active := d.views[d.active]
	crit := d.crit
	d.mu.Unlock()

	snap, err := active.Load(ctx, crit, d.lang)
	if err != nil {
		if errors.Is(err, transport.ErrUnauthorized) {
			return fmt.Errorf("session expired, run `gastro login`: %w", err)
		}
		if errors.Is(err, transport.ErrBusinessRequired) {
			return fmt.Errorf("select a business first: %w", err)
		}
		return err
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	d.mu.Lock()
	d.current = snap
	d.mu.Unlock()

	fmt.Fprintf(d.out, "\n[%s/%s] %s> %s", d.Role, active.Name, time.Now().Format("15:04:05"), view.Render(snap.Table))
	return nil
}

// Dispatch resolves an action command against the active view. The target
// must be present in the current snapshot; a mutation that fails is reported
// and triggers no re-fetch, leaving the rendered state untouched.
func (d *Dashboard) Dispatch(ctx context.Context, cmd Command) error {
	d.mu.Lock()
	active := d.views[d.active]
	status, visible := d.current.Status[cmd.ID]
	d.mu.Unlock()

	fn, ok := active.Actions[cmd.Action]
	if !ok {
		return fmt.Errorf("view %s does not support %q", active.Name, cmd.Action)
	}
	if !visible {
		return fmt.Errorf("%s is not in the current view, refresh first", cmd.ID)
	}

	if err := fn(ctx, cmd.ID, status, cmd.Arg); err != nil {
		var vErr *transport.ValidationError
		if errors.As(err, &vErr) {
			return fmt.Errorf("%s", vErr.Message)
		}
		return err
	}
	return d.refresh(ctx)
}

func (d *Dashboard) notify(format string, args ...interface{}) {
	fmt.Fprintf(d.out, format+"\n", args...)
	log.Printf(format, args...)
}

func (d *Dashboard) printHelp() {
	fmt.Fprintln(d.out, "commands: view <name> | find <text> | filter <field> <value> | clear | refresh | quit")
	fmt.Fprint(d.out, "views:")
	for _, v := range d.views {
		fmt.Fprintf(d.out, " %s", v.Name)
	}
	fmt.Fprintln(d.out)
	d.mu.Lock()
	active := d.views[d.active]
	d.mu.Unlock()
	fmt.Fprint(d.out, "actions:")
	for action := range active.Actions {
		fmt.Fprintf(d.out, " %s", action)
	}
	fmt.Fprintln(d.out, " (usage: <action> <id> [arg])")
}
