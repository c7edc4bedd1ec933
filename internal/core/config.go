package core

// RuntimeConfig is what the frontend tells a game on Reset: the output size
// and the seed for the obstacle layout.
type RuntimeConfig struct {
	ScreenW  int   // Output width: terminal columns, or window pixels
	ScreenH  int   // Output height: terminal rows, or window pixels
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// GameState is the status a game reports to its frontend after each step.
type GameState struct {
	Score    int  // Progress toward the goal, 0..100
	GameOver bool // Whether the episode has ended (lost or won)
	Won      bool // Whether the episode ended by reaching the goal
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
