package config

// Sample is an annotated configuration carrying every default, printed by -dump-config
const Sample = `# vi-match configuration
# Every key is optional; omitted keys keep their default.
# Environment variables VI_MATCH_<SECTION>_<KEY> override this file.

[board]
cols = 8
rows = 8
cell_size = 64.0          # pixels per cell in the window frontend
types = 6                 # distinct gem types, at least 2
points_per_token = 10

[animation]
speed = 0.2               # fraction of the remaining distance covered per tick
snap_threshold = 1.0      # pixels
rotation = true
spin_min = 0.002          # radians per tick
spin_max = 0.007

[timing]
tick_rate = 60
game_duration = "1m0s"
swap_settle = "250ms"
match_hold = "400ms"
clear_hold = "100ms"
fall_settle = "400ms"

[particles]
count = 8
speed = 10.0
size_min = 2.0
size_max = 7.0
life_step = 0.05
color = "#FFD700"         # or "type" for the gem's own color

[audio]
enabled = true
volume = 0.6

[display]
palette = ["#FF4136", "#2ECC40", "#0074D9", "#FFDC00", "#B10DC9", "#FF851B"]
background = "#1A1A2E"
terminal_cell_size = 8
assets = ""               # directory of gem0.png..gemN.png, empty for generated gems
`
