package components

// PlayerState 玩家存活状态
type PlayerState int

const (
	PlayerAlive PlayerState = iota
	PlayerDead
)

// String 返回状态名
func (s PlayerState) String() string {
	if s == PlayerDead {
		return "dead"
	}
	return "alive"
}

// PlayerComponent 标记玩家实体
type PlayerComponent struct {
	State PlayerState
	// 本帧速度，每轴取值 {-Speed, 0, Speed}
	XSpeed, YSpeed float64
}

// IsAlive 玩家是否存活
func (p *PlayerComponent) IsAlive() bool {
	return p.State == PlayerAlive
}

// EnemyComponent 标记敌人实体
type EnemyComponent struct {
	// Edge 生成时所在的屏幕边缘
	Edge SpawnEdge
}

// BulletComponent 标记子弹实体
type BulletComponent struct{}

// SpawnEdge 敌人生成边缘
type SpawnEdge int

const (
	EdgeTop SpawnEdge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// SpawnEdges 按固定顺序列出四条边，随机选择时使用
var SpawnEdges = [...]SpawnEdge{EdgeTop, EdgeBottom, EdgeLeft, EdgeRight}

func (e SpawnEdge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	}
	return "unknown"
}
