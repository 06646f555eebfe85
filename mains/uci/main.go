// UCI driver for the Captain engine.

package main

import (
	"bufio"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	dragon "github.com/dylhunn/dragontoothmg"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/n4h/Captain/engine"
)

var VersionString = "1.0 " + runtime.GOOS + "-" + runtime.GOARCH

func main() {
	viper.SetDefault("hash_mb", 64)
	viper.SetDefault("log_level", "warn")
	viper.SetConfigName("captain")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	_ = viper.ReadInConfig() // a config file is optional
	viper.SetEnvPrefix("captain")
	viper.AutomaticEnv()

	level, err := zerolog.ParseLevel(viper.GetString("log_level"))
	if err != nil {
		level = zerolog.WarnLevel
	}
	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	uciLoop(logger)
}

func uciLoop(logger zerolog.Logger) {
	scanner := bufio.NewScanner(os.Stdin)

	board := dragon.ParseFen(dragon.Startpos) // the game board
	posHist := []uint64{board.Hash()}
	moveHist := []dragon.Move{}

	eng := engine.NewEngine(os.Stdout, logger)
	tt := engine.NewTTable(viper.GetInt("hash_mb"))
	eng.SetTTable(tt)
	eng.SetHasher(engine.ZobristHasher{})

	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "uci":
			fmt.Println("id name Captain", VersionString)
			fmt.Println("id author Narbeh Mouradian")
			fmt.Println("option name Hash type spin default", viper.GetInt("hash_mb"), "min 1 max 1024")
			fmt.Println("uciok")
		case "isready":
			fmt.Println("readyok")
		case "ucinewgame":
			tt.Clear()
			board = dragon.ParseFen(dragon.Startpos)
			posHist = append(posHist[:0], board.Hash())
			moveHist = moveHist[:0]
		case "quit":
			return
		case "setoption":
			if len(tokens) != 5 || tokens[1] != "name" || tokens[3] != "value" {
				fmt.Println("info string Malformed setoption command")
				continue
			}
			switch strings.ToLower(tokens[2]) {
			case "hash":
				mb, err := strconv.Atoi(tokens[4])
				if err != nil || mb < 1 {
					fmt.Println("info string Hash value is not a positive int")
					continue
				}
				tt = engine.NewTTable(mb)
				eng.SetTTable(tt)
				logger.Info().Int("mb", mb).Msg("hash table resized")
			default:
				fmt.Println("info string Unknown UCI option", tokens[2])
			}
		case "position":
			newBoard, newPosHist, newMoveHist, ok := parsePosition(line)
			if !ok {
				continue
			}
			board, posHist, moveHist = newBoard, newPosHist, newMoveHist
		case "go":
			settings, ok := parseGo(line)
			if !ok {
				continue
			}
			eng.SetSettings(settings)
			mh := append([]dragon.Move(nil), moveHist...)
			ph := append([]uint64(nil), posHist...)
			bcopy := board
			engine.Searching.Store(true)
			go eng.RootSearch(bcopy, time.Now(), mh, ph)
		case "stop":
			engine.Searching.Store(false)
		case "ponderhit":
			eng.PonderHit()
		default:
			fmt.Println("info string Unknown command:", line)
		}
	}
}

// parsePosition handles "position [startpos | fen <fen>] [moves ...]",
// rebuilding the game history the search needs for repetition detection.
func parsePosition(line string) (dragon.Board, []uint64, []dragon.Move, bool) {
	var board dragon.Board
	posScanner := bufio.NewScanner(strings.NewReader(line))
	posScanner.Split(bufio.ScanWords)
	posScanner.Scan() // skip the first token
	if !posScanner.Scan() {
		fmt.Println("info string Malformed position command")
		return board, nil, nil, false
	}
	if strings.ToLower(posScanner.Text()) == "startpos" {
		board = dragon.ParseFen(dragon.Startpos)
		posScanner.Scan() // advance the scanner to leave it in a consistent state
	} else if strings.ToLower(posScanner.Text()) == "fen" {
		fenstr := ""
		for posScanner.Scan() && strings.ToLower(posScanner.Text()) != "moves" {
			fenstr += posScanner.Text() + " "
		}
		if fenstr == "" {
			fmt.Println("info string Invalid fen position")
			return board, nil, nil, false
		}
		board = dragon.ParseFen(fenstr)
	} else {
		fmt.Println("info string Invalid position subcommand")
		return board, nil, nil, false
	}
	posHist := []uint64{board.Hash()}
	moveHist := []dragon.Move{}
	if strings.ToLower(posScanner.Text()) != "moves" {
		return board, posHist, moveHist, true
	}
	for posScanner.Scan() { // for each move
		moveStr := strings.ToLower(posScanner.Text())
		legalMoves := board.GenerateLegalMoves()
		var nextMove dragon.Move
		found := false
		for _, mv := range legalMoves {
			if mv.String() == moveStr {
				nextMove = mv
				found = true
				break
			}
		}
		if !found { // we didn't find the move, but we will try to apply it anyway
			fmt.Println("info string Move", moveStr, "not found for position", board.ToFen())
			var err error
			nextMove, err = dragon.ParseMove(moveStr)
			if err != nil {
				fmt.Println("info string Contingency move parsing failed")
				return board, posHist, moveHist, false
			}
		}
		board.Apply(nextMove)
		moveHist = append(moveHist, nextMove)
		posHist = append(posHist, board.Hash())
	}
	return board, posHist, moveHist, true
}

func parseGo(line string) (engine.SearchSettings, bool) {
	settings := engine.DefaultSettings()
	var sawClock, sawMoveTime bool

	goScanner := bufio.NewScanner(strings.NewReader(line))
	goScanner.Split(bufio.ScanWords)
	goScanner.Scan() // skip the first token

	intArg := func(name string) (int, bool) {
		if !goScanner.Scan() {
			fmt.Println("info string Malformed go command option", name)
			return 0, false
		}
		v, err := strconv.Atoi(goScanner.Text())
		if err != nil {
			fmt.Println("info string Malformed go command option; could not convert", name)
			return 0, false
		}
		return v, true
	}

	for goScanner.Scan() {
		nextToken := strings.ToLower(goScanner.Text())
		switch nextToken {
		case "infinite":
			settings.Infinite = true
		case "ponder":
			settings.Ponder = true
		case "wtime":
			if v, ok := intArg("wtime"); ok {
				settings.WTime = time.Duration(v) * time.Millisecond
				sawClock = true
			}
		case "btime":
			if v, ok := intArg("btime"); ok {
				settings.BTime = time.Duration(v) * time.Millisecond
				sawClock = true
			}
		case "winc":
			if v, ok := intArg("winc"); ok {
				settings.WInc = time.Duration(v) * time.Millisecond
			}
		case "binc":
			if v, ok := intArg("binc"); ok {
				settings.BInc = time.Duration(v) * time.Millisecond
			}
		case "movestogo":
			if v, ok := intArg("movestogo"); ok {
				settings.MovesToGo = v
			}
		case "depth":
			if v, ok := intArg("depth"); ok {
				settings.MaxDepth = v
			}
		case "nodes":
			if v, ok := intArg("nodes"); ok {
				settings.MaxNodes = uint64(v)
			}
		case "movetime":
			if v, ok := intArg("movetime"); ok {
				settings.MaxTime = time.Duration(v) * time.Millisecond
				sawMoveTime = true
			}
		default:
			fmt.Println("info string Unknown go subcommand", nextToken)
		}
	}
	// With no clock and no movetime there is nothing to budget against:
	// think until stopped or the depth/node limit is reached.
	if !sawClock && !sawMoveTime {
		settings.Infinite = true
	}
	return settings, true
}
