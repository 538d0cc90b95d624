package bench

import (
	"testing"
	"time"
)

func TestActionLogRecords(t *testing.T) {
	t.Parallel()

	before, err := summaryCount(actionDuration, "neutron.create_network")
	if err != nil {
		t.Fatal("reading summary: err:", err)
	}

	var log ActionLog
	stop := log.Start("neutron.create_network")
	time.Sleep(time.Millisecond)
	stop()

	actions := log.Actions()
	if len(actions) != 1 {
		t.Fatal("unexpected action count: exp: 1 got:", len(actions))
	}
	if actions[0].Name != "neutron.create_network" {
		t.Error("unexpected action name: got:", actions[0].Name)
	}
	if actions[0].Duration() <= 0 {
		t.Error("expected a positive duration: got:", actions[0].Duration())
	}

	after, err := summaryCount(actionDuration, "neutron.create_network")
	if err != nil {
		t.Fatal("reading summary: err:", err)
	}
	if after != before+1 {
		t.Error("summary observation missing: exp:", before+1, "got:", after)
	}
}

func TestActionLogOrder(t *testing.T) {
	t.Parallel()

	var log ActionLog
	outer := log.Start("neutron.create_network_topology")
	inner := log.Start("neutron.create_network")
	inner()
	outer()

	actions := log.Actions()
	if len(actions) != 2 {
		t.Fatal("unexpected action count: exp: 2 got:", len(actions))
	}
	if actions[0].Name != "neutron.create_network" {
		t.Error("actions are not in completion order: first:", actions[0].Name)
	}
}

func TestActionLogNil(t *testing.T) {
	t.Parallel()

	var log *ActionLog
	stop := log.Start("neutron.list_networks")
	stop()

	if got := log.Actions(); got != nil {
		t.Error("nil log should keep no chronology: got:", got)
	}
	log.Reset()
}

func TestActionLogReset(t *testing.T) {
	t.Parallel()

	var log ActionLog
	log.Start("neutron.create_network")()
	log.Reset()

	if got := log.Actions(); len(got) != 0 {
		t.Error("expected an empty log after reset: got:", got)
	}
}
