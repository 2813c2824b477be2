//go:build js && wasm

// Browser binding for the engine. Game states cross the JS boundary as
// JSON strings; the page parses them and builds its own rendering.
package main

import (
	"encoding/json"
	"syscall/js"

	"github.com/connect4/server/internal/bot"
	"github.com/connect4/server/internal/game"
)

var (
	engine   = game.Default()
	selector = bot.NewSelector(engine, nil)
)

func decodeState(arg js.Value) (game.State, bool) {
	var state game.State
	if err := json.Unmarshal([]byte(arg.String()), &state); err != nil {
		return game.State{}, false
	}
	return state, true
}

func encodeState(state game.State) any {
	data, err := json.Marshal(state)
	if err != nil {
		return js.Null()
	}
	return js.ValueOf(string(data))
}

func createInitialState(this js.Value, args []js.Value) any {
	return encodeState(engine.InitialState())
}

func applyMove(this js.Value, args []js.Value) any {
	if len(args) < 2 {
		return js.Null()
	}
	state, ok := decodeState(args[0])
	if !ok {
		return js.Null()
	}
	return encodeState(engine.ApplyMove(state, args[1].Int()))
}

func computerMove(this js.Value, args []js.Value) any {
	if len(args) < 2 {
		return js.ValueOf(-1)
	}
	state, ok := decodeState(args[0])
	if !ok {
		return js.ValueOf(-1)
	}
	column, err := selector.SelectMove(state, bot.ParseDifficulty(args[1].String()))
	if err != nil {
		return js.ValueOf(-1)
	}
	return js.ValueOf(column)
}

func isGameOver(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return js.ValueOf(false)
	}
	state, ok := decodeState(args[0])
	if !ok {
		return js.ValueOf(false)
	}
	return js.ValueOf(state.IsOver())
}

func currentPlayer(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return js.ValueOf(0)
	}
	state, ok := decodeState(args[0])
	if !ok {
		return js.ValueOf(0)
	}
	return js.ValueOf(int(state.CurrentPlayer))
}

func winner(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return js.ValueOf(0)
	}
	state, ok := decodeState(args[0])
	if !ok {
		return js.ValueOf(0)
	}
	return js.ValueOf(int(state.Winner))
}

func main() {
	api := js.Global().Get("Object").New()
	api.Set("createInitialState", js.FuncOf(createInitialState))
	api.Set("applyMove", js.FuncOf(applyMove))
	api.Set("computerMove", js.FuncOf(computerMove))
	api.Set("isGameOver", js.FuncOf(isGameOver))
	api.Set("currentPlayer", js.FuncOf(currentPlayer))
	api.Set("winner", js.FuncOf(winner))
	js.Global().Set("connectFour", api)

	// Keep the runtime alive for callbacks.
	select {}
}
