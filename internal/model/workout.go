// Package model はドメインモデルを定義する。
package model

import "time"

// Goal はワークアウトの目的を表す。固定語彙のenum。
type Goal string

const (
	// GoalWeightLoss は減量目的。
	GoalWeightLoss Goal = "weight loss"
	// GoalMuscleGain は筋肥大目的。
	GoalMuscleGain Goal = "muscle gain"
	// GoalEndurance は持久力向上目的。
	GoalEndurance Goal = "endurance"
	// GoalStrength は筋力向上目的。
	GoalStrength Goal = "strength"
	// GoalFlexibility は柔軟性向上目的。
	GoalFlexibility Goal = "flexibility"
	// GoalGeneralFitness は全般的なフィットネス目的。
	GoalGeneralFitness Goal = "general fitness"
)

// AllGoals は定義済みの全Goal値を定義順で返す。
func AllGoals() []Goal {
	return []Goal{
		GoalWeightLoss,
		GoalMuscleGain,
		GoalEndurance,
		GoalStrength,
		GoalFlexibility,
		GoalGeneralFitness,
	}
}

// IsValid は定義済みのGoal値かどうかを返す。
func (g Goal) IsValid() bool {
	for _, v := range AllGoals() {
		if g == v {
			return true
		}
	}
	return false
}

// Difficulty はワークアウトの難易度を表す。
type Difficulty string

const (
	// DifficultyBeginner は初心者向け。
	DifficultyBeginner Difficulty = "beginner"
	// DifficultyIntermediate は中級者向け。
	DifficultyIntermediate Difficulty = "intermediate"
	// DifficultyAdvanced は上級者向け。
	DifficultyAdvanced Difficulty = "advanced"
)

// Exercise はワークアウトを構成する1つの運動を表す。
// name、sets、repsは必須。instructionsは任意。
// workoutsテーブルのexercises列（jsonb）にこのJSON表現で保存される。
type Exercise struct {
	Name         string `json:"name"`
	Sets         int    `json:"sets"`
	Reps         int    `json:"reps"`
	Instructions string `json:"instructions,omitempty"`
}

// Workout はワークアウトカタログの1件を表す。
// シードプロセスで作成され、アプリケーションからは読み取り専用。
type Workout struct {
	ID          string
	Title       string
	Description string
	Goals       []Goal
	Difficulty  Difficulty
	Duration    float64 // 分。正の数
	Exercises   []Exercise
	Keywords    []string // 小文字・トリム済みで保存される
	CreatedAt   time.Time
}
