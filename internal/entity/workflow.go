package entity

import "time"

// Graph names understood by the workflow engine.
const (
	GraphPowerOn                = "Graph.PowerOn.Node"
	GraphPowerOff               = "Graph.PowerOff.Node"
	GraphResetSoft              = "Graph.Reset.Soft.Node"
	GraphReboot                 = "Graph.Reboot.Node"
	GraphInstallCentOS          = "Graph.InstallCentOS"
	GraphInstallESXi            = "Graph.InstallESXi"
	GraphInstallRHEL            = "Graph.InstallRHEL"
	GraphUpdateSystemComponents = "Graph.Dell.Wsman.UpdateSystemComponents"
	GraphResetComponents        = "Graph.Dell.Racadm.ResetComponents"
	GraphAddVolume              = "Graph.Add.Volume"
	GraphDeleteVolume           = "Graph.Delete.Volume"
	GraphAddHotspare            = "Graph.Add.Hotspare"
)

// GraphRequest asks the workflow engine to run a named graph.
type GraphRequest struct {
	Name    string                 `json:"name"`
	Options map[string]interface{} `json:"options"`
}

// WorkflowInstance is a started graph.
type WorkflowInstance struct {
	InstanceID string                 `json:"instanceId"`
	NodeID     string                 `json:"node"`
	Name       string                 `json:"name"`
	Options    map[string]interface{} `json:"options"`
	CreatedAt  time.Time              `json:"createdAt"`
}
