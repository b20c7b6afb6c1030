// playkeys - плеер плейлиста, управляемый горячими клавишами.
//
// Работает в системном трее. Глобальные сочетания срабатывают в любом
// приложении, локальные только в окне плеера. На Linux плеер доступен
// медиаклавишам и апплетам рабочего стола через MPRIS.
package main

// Version устанавливается при сборке через -ldflags.
var Version = "dev"

func main() {
	Execute()
}
