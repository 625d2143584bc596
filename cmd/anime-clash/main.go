package main

import (
	"os"

	"github.com/Nishant2356/Card-game/internal/api"
	"github.com/Nishant2356/Card-game/internal/constants"
	"github.com/Nishant2356/Card-game/internal/logging"
	"github.com/Nishant2356/Card-game/internal/relay"
	"github.com/Nishant2356/Card-game/internal/service"
	"github.com/Nishant2356/Card-game/internal/version"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	// Path may be provided via ANIMECLASH_CONFIG or defaults to
	// ./animeclash_config.json in the current working directory.
	configPath := os.Getenv(constants.EnvConfigPath)
	if configPath == "" {
		configPath = "./animeclash_config.json"
	}
	cfg := loadConfigOrExit(configPath)

	dbPath := os.Getenv(constants.EnvDBPath)
	if dbPath == "" {
		dbPath = "./data/animeclash.db"
	}
	repo := createRepositoryOrExit(dbPath, cfg)

	hub := relay.NewHub()
	mgr := service.NewManager(repo, hub)
	handler := api.NewGameHandler(repo, mgr, hub)

	router := gin.Default()

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET("/version", handler.Version)

		// Catalog lookups used by team building and battle hydration
		apiRoutes.GET(constants.RouteCharacters, handler.ListCharacters)
		apiRoutes.GET(constants.RouteCharacterByName, handler.CharactersByName)
		apiRoutes.GET(constants.RouteMoves, handler.ListMoves)
		apiRoutes.GET(constants.RouteMoveByName, handler.MovesByName)

		// Room lobby
		apiRoutes.POST(constants.RouteRooms, handler.CreateRoom)
		apiRoutes.POST(constants.RouteRoomsJoin, handler.JoinRoom)
		apiRoutes.GET(constants.RouteRoomByCode, handler.GetRoom)
		apiRoutes.POST(constants.RouteRoomLeave, handler.LeaveRoom)

		// Battle flow
		apiRoutes.POST(constants.RouteRoomTeams, handler.SaveTeam)
		apiRoutes.POST(constants.RouteRoomStart, handler.StartBattle)
		apiRoutes.POST(constants.RouteRoomSelect, handler.SelectMove)
		apiRoutes.POST(constants.RouteRoomTargets, handler.ChooseTargets)
		apiRoutes.POST(constants.RouteRoomConfirm, handler.ConfirmTurn)
		apiRoutes.POST(constants.RouteRoomSwap, handler.Swap)
		apiRoutes.GET(constants.RouteRoomState, handler.BattleState)
	}

	// Websocket relay: a dumb broadcast between the two browsers of a room
	router.GET(constants.RouteRelay, handler.Relay)

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{
		constants.LogFieldAddr: addr,
		"version":              version.String(),
	})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
