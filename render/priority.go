package render

// Layer determines stacking order. Lower values compose first and are covered by higher layers
type Layer int

const (
	LayerTree Layer = iota
	LayerBase
	LayerMessageBorder
	LayerMessage
	layerCount
)

var layerNames = [layerCount]string{
	LayerTree:          "tree",
	LayerBase:          "base",
	LayerMessageBorder: "message-border",
	LayerMessage:       "message",
}

func (l Layer) String() string {
	if l < 0 || l >= layerCount {
		return "unknown"
	}
	return layerNames[l]
}
