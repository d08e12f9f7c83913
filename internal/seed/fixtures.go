package seed

import "github.com/fitlab/backend/internal/model"

// Fixtures は投入する固定のワークアウトカタログを返す。
// IDとCreatedAtは投入時にSeederが設定する。
func Fixtures() []model.Workout {
	return []model.Workout{
		{
			Title:       "HIIT Fat Burner",
			Description: "High-intensity interval training designed for maximum calorie burn and weight loss",
			Goals:       []model.Goal{model.GoalWeightLoss, model.GoalEndurance},
			Difficulty:  model.DifficultyIntermediate,
			Duration:    30,
			Exercises: []model.Exercise{
				{Name: "Burpees", Sets: 3, Reps: 15, Instructions: "Full body explosive movement"},
				{Name: "Mountain Climbers", Sets: 3, Reps: 30, Instructions: "Keep core tight throughout"},
				{Name: "Jump Squats", Sets: 3, Reps: 20, Instructions: "Land softly and immediately repeat"},
			},
			Keywords: []string{"hiit", "cardio", "fat burn", "intense"},
		},
		{
			Title:       "Strength Foundation",
			Description: "Basic strength training routine perfect for beginners",
			Goals:       []model.Goal{model.GoalMuscleGain, model.GoalStrength},
			Difficulty:  model.DifficultyBeginner,
			Duration:    45,
			Exercises: []model.Exercise{
				{Name: "Push-ups", Sets: 3, Reps: 10, Instructions: "Keep body straight throughout"},
				{Name: "Bodyweight Squats", Sets: 3, Reps: 15, Instructions: "Keep knees aligned with toes"},
				{Name: "Dumbbell Rows", Sets: 3, Reps: 12, Instructions: "Pull weight to hip level"},
			},
			Keywords: []string{"strength", "basics", "beginner friendly"},
		},
		{
			Title:       "Endurance Builder",
			Description: "Cardiovascular workout to improve stamina and endurance",
			Goals:       []model.Goal{model.GoalEndurance, model.GoalGeneralFitness},
			Difficulty:  model.DifficultyIntermediate,
			Duration:    40,
			Exercises: []model.Exercise{
				{Name: "Running", Sets: 1, Reps: 1, Instructions: "20 minutes at moderate pace"},
				{Name: "Jump Rope", Sets: 3, Reps: 50, Instructions: "Maintain consistent rhythm"},
				{Name: "High Knees", Sets: 3, Reps: 30, Instructions: "Drive knees up with power"},
			},
			Keywords: []string{"cardio", "stamina", "endurance training"},
		},
		{
			Title:       "Power Yoga Flow",
			Description: "Dynamic yoga sequence focusing on flexibility and strength",
			Goals:       []model.Goal{model.GoalFlexibility, model.GoalGeneralFitness},
			Difficulty:  model.DifficultyIntermediate,
			Duration:    50,
			Exercises: []model.Exercise{
				{Name: "Sun Salutations", Sets: 3, Reps: 1, Instructions: "Flow through poses mindfully"},
				{Name: "Warrior Sequences", Sets: 2, Reps: 1, Instructions: "Hold each pose for 5 breaths"},
				{Name: "Balance Poses", Sets: 2, Reps: 1, Instructions: "Focus on steady breathing"},
			},
			Keywords: []string{"yoga", "flexibility", "mindfulness"},
		},
		{
			Title:       "Advanced Strength",
			Description: "Challenging compound exercises for experienced lifters",
			Goals:       []model.Goal{model.GoalStrength, model.GoalMuscleGain},
			Difficulty:  model.DifficultyAdvanced,
			Duration:    60,
			Exercises: []model.Exercise{
				{Name: "Deadlifts", Sets: 5, Reps: 5, Instructions: "Maintain neutral spine"},
				{Name: "Bench Press", Sets: 5, Reps: 5, Instructions: "Full range of motion"},
				{Name: "Pull-ups", Sets: 4, Reps: 8, Instructions: "Control descent"},
			},
			Keywords: []string{"strength training", "powerlifting", "advanced"},
		},
		{
			Title:       "Core Crusher",
			Description: "Intensive core workout for building strong abs",
			Goals:       []model.Goal{model.GoalStrength, model.GoalGeneralFitness},
			Difficulty:  model.DifficultyIntermediate,
			Duration:    25,
			Exercises: []model.Exercise{
				{Name: "Planks", Sets: 3, Reps: 1, Instructions: "Hold for 60 seconds"},
				{Name: "Russian Twists", Sets: 3, Reps: 20, Instructions: "Control the movement"},
				{Name: "Leg Raises", Sets: 3, Reps: 15, Instructions: "Keep lower back pressed down"},
			},
			Keywords: []string{"core", "abs", "stability"},
		},
		{
			Title:       "Weight Loss Circuit",
			Description: "Full-body circuit training for fat loss",
			Goals:       []model.Goal{model.GoalWeightLoss, model.GoalEndurance},
			Difficulty:  model.DifficultyBeginner,
			Duration:    35,
			Exercises: []model.Exercise{
				{Name: "Jumping Jacks", Sets: 3, Reps: 30, Instructions: "Keep pace consistent"},
				{Name: "Bodyweight Lunges", Sets: 3, Reps: 20, Instructions: "Alternate legs"},
				{Name: "Push-ups", Sets: 3, Reps: 10, Instructions: "Modify on knees if needed"},
			},
			Keywords: []string{"circuit training", "fat loss", "beginner friendly"},
		},
		{
			Title:       "Muscle Builder Pro",
			Description: "Hypertrophy-focused workout for muscle growth",
			Goals:       []model.Goal{model.GoalMuscleGain},
			Difficulty:  model.DifficultyAdvanced,
			Duration:    55,
			Exercises: []model.Exercise{
				{Name: "Barbell Squats", Sets: 4, Reps: 12, Instructions: "Focus on form"},
				{Name: "Dumbbell Press", Sets: 4, Reps: 12, Instructions: "Control the weight"},
				{Name: "Barbell Rows", Sets: 4, Reps: 12, Instructions: "Squeeze at top"},
			},
			Keywords: []string{"hypertrophy", "muscle building", "strength"},
		},
		{
			Title:       "Flexibility Focus",
			Description: "Dynamic stretching routine for improved flexibility",
			Goals:       []model.Goal{model.GoalFlexibility},
			Difficulty:  model.DifficultyBeginner,
			Duration:    40,
			Exercises: []model.Exercise{
				{Name: "Dynamic Stretches", Sets: 2, Reps: 10, Instructions: "Move through full range"},
				{Name: "Yoga Poses", Sets: 1, Reps: 1, Instructions: "Hold each pose for 30 seconds"},
				{Name: "Mobility Work", Sets: 2, Reps: 10, Instructions: "Focus on problem areas"},
			},
			Keywords: []string{"stretching", "mobility", "flexibility"},
		},
		{
			Title:       "Endurance Max",
			Description: "Long-duration cardio workout for maximum endurance",
			Goals:       []model.Goal{model.GoalEndurance},
			Difficulty:  model.DifficultyAdvanced,
			Duration:    75,
			Exercises: []model.Exercise{
				{Name: "Interval Running", Sets: 1, Reps: 1, Instructions: "Alternate sprint and jog"},
				{Name: "Cycling", Sets: 1, Reps: 1, Instructions: "Maintain steady pace"},
				{Name: "Stair Climber", Sets: 1, Reps: 1, Instructions: "Keep heart rate elevated"},
			},
			Keywords: []string{"cardio", "endurance", "stamina"},
		},
	}
}
