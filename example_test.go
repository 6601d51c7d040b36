package switchyard_test

import (
	"context"
	"fmt"

	"github.com/aretw0/switchyard"
	"github.com/aretw0/switchyard/pkg/fsm"
	"github.com/aretw0/switchyard/pkg/game"
)

func ExampleLoad() {
	spec, err := switchyard.Load("pkg/config/testdata/phone.yaml")
	if err != nil {
		fmt.Println(err)
		return
	}

	for trigger, to := range spec.Table.Rules(spec.Initial) {
		fmt.Printf("%s -> %s\n", trigger, to)
	}
	// Output:
	// call_dialed -> connecting
	// stop_using_phone -> on_hook
}

func Example_table() {
	table := fsm.NewTable()
	table.AddRule("idle", "dial", "connecting")
	table.AddRule("connecting", "answer", "connected")
	table.AddRule("connected", "hang_up", "idle")

	state, _ := table.Apply("idle", "dial")
	fmt.Println(state)

	state, err := table.Apply(state, "hang_up")
	fmt.Println(state, fsm.IsIllegal(err))
	// Output:
	// connecting
	// connecting true
}

func ExampleOpen() {
	m, err := switchyard.Open("pkg/config/testdata/phone.yaml")
	if err != nil {
		fmt.Println(err)
		return
	}

	ctx := context.Background()
	_ = m.Fire(ctx, "call_dialed")
	_ = m.Fire(ctx, "call_connected")
	fmt.Println(m.Current(), m.Cursor().History)
	// Output: connected [off_hook connecting connected]
}

func Example_broker() {
	g := game.New()
	goblin := game.NewGoblin(g, "Grunt")
	game.NewGoblin(g, "Snag")
	king := game.NewGoblinKing(g, "Gorbag")
	fmt.Println(goblin)

	king.Leave()
	fmt.Println(goblin)
	fmt.Println(g.Queries.Len(), g.Queries.Broadcasting())

	// Output:
	// name: Grunt attack: 2 defense: 3
	// name: Grunt attack: 1 defense: 2
	// 2 false
}
