package static

var (
	Head = `
    <!DOCTYPE html>
    <html>
    <head>
        <title>DCEL</title>
		<style>
			body {
				background-color: #1F1F1F; /* Темный фон для всей страницы */
				color: #d3d3d3; /* Светло-серый текст */
				font-family: Consolas, monospace;
				overflow: hidden; /* Запретить прокрутку */
			}

			#container {
				display: flex;
				width: 100%;
				height: 100vh;
				box-sizing: border-box;
			}

			#left-container {
				width: 50%;
				padding: 10px;
				box-sizing: border-box;
			}

			#right-container {
				width: 50%;
				padding: 10px;
				box-sizing: border-box;
				border-left: 5px solid #757575; /* Темная граница для правого контейнера */
				overflow: auto; /* Прокрутка для логов */
				background-color: #1e1e1e; /* Темный фон для контейнера логов */
			}

			#logs {
				white-space: pre-wrap; /* Сохраняем пробелы и переносим строки */
				word-wrap: break-word; /* Перенос длинных слов */
			}

			textarea {
				width: 45%;
				height: 160px;
				font-family: inherit;
			}

			table.stats td {
				padding: 2px 12px 2px 0;
			}

			.error {
				color: #ff6b6b; /* Ошибка построения */
			}

			input[type="number"],
			input[type="submit"],
			select,
			textarea {
				background-color: #2b2b2b; /* Темный фон для полей ввода */
				color: #d3d3d3; /* Светло-серый текст для полей */
				border: 1px solid #444; /* Темная граница */
				padding: 5px;
				margin: 5px 0;
				border-radius: 4px;
			}

			input[type="submit"]:hover {
				background-color: #444; /* Немного светлее при наведении */
				cursor: pointer;
			}

			::-webkit-scrollbar {
				width: 8px;
			}

			::-webkit-scrollbar-thumb {
				background-color: #444; /* Цвет ползунка */
				border-radius: 10px;
			}

			::-webkit-scrollbar-track {
				background-color: #2b2b2b; /* Цвет области прокрутки */
			}
        </style>
    </head>
    <body>
        <div id="container">
            <div id="left-container">
                <h1>Построение DCEL</h1>
                <form id="dcel-form" method="POST">
                    <label for="shape">Фигура:</label>
                    <select id="shape" name="shape">
                        <option value="polygon">Правильный многоугольник</option>
                        <option value="star">Случайный звездный многоугольник</option>
                        <option value="wheel">Колесо</option>
                        <option value="grid">Сетка</option>
                        <option value="custom">Свои точки и ребра</option>
                    </select><br>
                    <label for="sides">Вершин (n):</label>
                    <input type="number" id="sides" name="sides" value="6" min="3" max="500">
                    <label for="rows">Строк:</label>
                    <input type="number" id="rows" name="rows" value="3" min="1" max="50">
                    <label for="cols">Столбцов:</label>
                    <input type="number" id="cols" name="cols" value="3" min="1" max="50"><br>
                    <label for="seed">Seed:</label>
                    <input type="number" id="seed" name="seed" value="1"><br>
    `

	// между Head и FormEnd вставляются textarea с точками и ребрами
	FormEnd = `
                    <br><input type="submit" value="Построить">
                </form>
    `

	Part2 = `
            </div>
            <div id="right-container">
                <h1>Логи</h1>
                <div id="logs">`

	Part3 = `
                </div>
            </div>
        </div>

        <script>
            document.getElementById('dcel-form').addEventListener('submit', function (e) {
                e.preventDefault();
                const formData = new FormData(this);
                const params = new URLSearchParams(formData).toString();

                // Отправка данных формы
                fetch('/', {
                    method: 'POST',
                    body: params,
                    headers: {
                        'Content-Type': 'application/x-www-form-urlencoded'
                    }
                })
                .then(response => {
                    if (!response.ok) {
                        throw new Error('Ошибка при отправке данных');
                    }
                    return response.text(); // HTML с новой диаграммой и логами
                })
                .then(html => {
                    document.open();
                    document.write(html);
                    document.close();
                })
                .catch(error => {
                    console.error('Ошибка:', error);
                });
            });
        </script>
    </body>
    </html>
    `
)
